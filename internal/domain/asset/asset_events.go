package asset

import (
	"github.com/govprop/backend/internal/domain/shared"
)

// AggregateTypeAsset is the aggregate type name for events
const AggregateTypeAsset = "Asset"

const (
	EventTypeAssetCreated = "AssetCreated"
	EventTypeAssetDeleted = "AssetDeleted"
)

// AssetCreatedEvent is raised when an asset is registered
type AssetCreatedEvent struct {
	shared.BaseDomainEvent
	Type       Type   `json:"type"`
	Name       string `json:"name"`
	InitialQty int    `json:"initial_qty"`
}

// NewAssetCreatedEvent creates a new AssetCreatedEvent
func NewAssetCreatedEvent(a *Asset) *AssetCreatedEvent {
	return &AssetCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetCreated, AggregateTypeAsset, a.ID),
		Type:            a.Type,
		Name:            a.Name,
		InitialQty:      a.InitialQty,
	}
}

// AssetDeletedEvent is raised when an asset is soft-deleted
type AssetDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewAssetDeletedEvent creates a new AssetDeletedEvent
func NewAssetDeletedEvent(a *Asset) *AssetDeletedEvent {
	return &AssetDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetDeleted, AggregateTypeAsset, a.ID),
		Name:            a.Name,
	}
}
