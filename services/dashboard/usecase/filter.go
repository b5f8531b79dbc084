package usecase

import (
	"strings"
	"time"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

const statusAll = "ALL"

func validateFilter(filter models.CollectionFilter) error {
	if filter.Month == "" {
		return nil
	}
	if _, err := time.Parse(models.MonthLayout, filter.Month); err != nil {
		return apperror.NewValidationError("month", "Month must look like 2026-04")
	}
	return nil
}

// applyFilter keeps the items matching every non-empty criterion, in order
func applyFilter(items []models.CollectionItem, filter models.CollectionFilter) []models.CollectionItem {
	query := utils.NormalizeText(filter.Search)
	status := strings.TrimSpace(filter.Status)
	if strings.EqualFold(status, statusAll) {
		status = ""
	}

	matched := make([]models.CollectionItem, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(item.Text, query) {
			continue
		}
		if status != "" && !strings.EqualFold(item.Status, status) {
			continue
		}
		if filter.Month != "" && item.Month != filter.Month {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}
