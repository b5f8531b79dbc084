package models

import "time"

// CollectionFilter narrows a dashboard collection in memory
type CollectionFilter struct {
	Search string `query:"q"`
	Status string `query:"status"`
	Month  string `query:"month"`
}

// CollectionItem is one dashboard row plus the facets filtering looks at
type CollectionItem struct {
	Value  interface{}
	Text   string
	Status string
	Month  string
}

// CollectionSnapshot is the last applied copy of a collection
type CollectionSnapshot struct {
	Name       string
	Items      []CollectionItem
	Generation uint64
	SyncedAt   time.Time
}

// CollectionView is a filtered collection as served to the operator UI
type CollectionView struct {
	Collection string        `json:"collection"`
	Items      []interface{} `json:"items"`
	Total      int           `json:"total"`
	Matched    int           `json:"matched"`
	Generation uint64        `json:"generation"`
	SyncedAt   *time.Time    `json:"synced_at,omitempty"`
}

// SyncReport summarises a full resync
type SyncReport struct {
	Refreshed []string          `json:"refreshed"`
	Failed    map[string]string `json:"failed,omitempty"`
}
