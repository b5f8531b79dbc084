package dashboard

import (
	"time"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/urbancabz/console/services/dashboard CollectionRepo
type CollectionRepo interface {
	// Begin hands out the generation a fetch started now will carry
	Begin(collection string) uint64
	// Apply stores items unless a newer generation was applied already
	Apply(collection string, generation uint64, items []models.CollectionItem, at time.Time) bool
	Snapshot(collection string) (*models.CollectionSnapshot, bool)
}
