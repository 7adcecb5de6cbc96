package inventory

import (
	"github.com/go-monolith/mono/pkg/helper"
)

// ItemAddedEvent is emitted after an item is persisted to the store.
type ItemAddedEvent struct {
	Item ItemRecord `json:"item"`
}

// ItemAddedV1 is the typed event definition for item creation.
// Subject: events.inventory.v1.item-added
var ItemAddedV1 = helper.EventDefinition[ItemAddedEvent](
	"inventory", "ItemAdded", "v1",
)
