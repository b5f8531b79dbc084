package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/pricing"
)

// PricingHandler handles HTTP requests for the pricing settings
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// GetSettings handles GET /api/pricing
func (h *PricingHandler) GetSettings(c echo.Context) error {
	settings, err := h.pricingUC.GetSettings(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", settings)
}

// UpdateSettings handles PUT /api/pricing
func (h *PricingHandler) UpdateSettings(c echo.Context) error {
	var req models.PricingSettings
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ctx := appcontext.FromEcho(c)
	settings, err := h.pricingUC.UpdateSettings(ctx, req)
	if err != nil {
		logger.Warn("Pricing update failed",
			logger.String("operator", appcontext.GetOperator(ctx)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing settings saved", settings)
}

// EnabledServices handles GET /api/pricing/services
func (h *PricingHandler) EnabledServices(c echo.Context) error {
	services, err := h.pricingUC.EnabledServices(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", services)
}
