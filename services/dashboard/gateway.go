package dashboard

import (
	"context"
	"encoding/json"

	"github.com/urbancabz/console/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/urbancabz/console/services/dashboard CollectionGW,NotifierGW,Broadcaster
type CollectionGW interface {
	FetchCollection(ctx context.Context, collection string) (json.RawMessage, error)
}

// NotifierGW tells other console instances a collection changed
type NotifierGW interface {
	PublishRefresh(ctx context.Context, notice models.RefreshNotice) error
}

// Broadcaster pushes change events to connected browsers
type Broadcaster interface {
	Broadcast(event string, data interface{}) error
}
