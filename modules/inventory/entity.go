package inventory

import (
	"time"
)

// DateLayout is the calendar date format used on every module boundary.
const DateLayout = "2006-01-02"

// Default values applied when an add request leaves them unset.
const (
	DefaultQuantity     = 0
	DefaultReorderPoint = 10
)

// Item represents one grocery item in the backstock inventory.
// Price and cost are kept as text exactly as entered; currency parsing
// happens on demand in the analytics module.
type Item struct {
	ID           int        `gorm:"primarykey" json:"id"`
	Description  string     `gorm:"size:60;not null" json:"description"`
	LastSold     *time.Time `gorm:"type:date" json:"last_sold,omitempty"`
	ShelfLife    string     `gorm:"size:5;not null" json:"shelf_life"`
	Department   string     `gorm:"size:40" json:"department"`
	Price        string     `gorm:"size:20;not null" json:"price"`
	Unit         string     `gorm:"size:10;not null" json:"unit"`
	XFor         int        `gorm:"column:x_for;not null;default:1" json:"x_for"`
	Cost         string     `gorm:"size:20;not null" json:"cost"`
	Quantity     int        `gorm:"not null;default:0" json:"quantity"`
	ReorderPoint int        `gorm:"not null;default:10" json:"reorder_point"`
	DateAdded    time.Time  `gorm:"type:date;not null" json:"date_added"`
}

// TableName returns the table name for the Item model.
func (Item) TableName() string {
	return "grocery_items"
}

// Record converts an Item to its versioned wire representation.
// Serialization is explicit so the wire layout never depends on
// struct field order.
func (i *Item) Record() ItemRecord {
	rec := ItemRecord{
		ID:           i.ID,
		Description:  i.Description,
		ShelfLife:    i.ShelfLife,
		Department:   i.Department,
		Price:        i.Price,
		Unit:         i.Unit,
		XFor:         i.XFor,
		Cost:         i.Cost,
		Quantity:     i.Quantity,
		ReorderPoint: i.ReorderPoint,
	}
	if i.LastSold != nil {
		rec.LastSold = i.LastSold.Format(DateLayout)
	}
	if !i.DateAdded.IsZero() {
		rec.DateAdded = i.DateAdded.Format(DateLayout)
	}
	return rec
}

// NewItem builds an Item from an add request, applying the documented
// defaults: an unparseable last-sold date is treated as "never sold",
// an unparseable or missing date-added falls back to now.
func NewItem(req AddItemRequest, now time.Time) *Item {
	item := &Item{
		ID:           req.ID,
		Description:  req.Description,
		LastSold:     parseDate(req.LastSold),
		ShelfLife:    req.ShelfLife,
		Department:   req.Department,
		Price:        req.Price,
		Unit:         req.Unit,
		XFor:         req.XFor,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		ReorderPoint: DefaultReorderPoint,
		DateAdded:    dateOnly(now),
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if added := parseDate(req.DateAdded); added != nil {
		item.DateAdded = *added
	}
	return item
}

// parseDate parses a YYYY-MM-DD string, returning nil for blank or
// malformed input.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
