package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/journal"
)

// JournalHandler handles HTTP requests for the action journal
type JournalHandler struct {
	journalUC journal.JournalUC
}

// NewJournalHandler creates a new journal HTTP handler
func NewJournalHandler(journalUC journal.JournalUC) *JournalHandler {
	return &JournalHandler{journalUC: journalUC}
}

// List handles GET /api/admin/journal?booking_id=&limit=
func (h *JournalHandler) List(c echo.Context) error {
	filter := models.JournalFilter{BookingID: c.QueryParam("booking_id")}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit: "+raw)
		}
		filter.Limit = limit
	}

	entries, err := h.journalUC.List(appcontext.FromEcho(c), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}
