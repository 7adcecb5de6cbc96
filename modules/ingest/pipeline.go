package ingest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/grocery-inventory/modules/inventory"
	"github.com/google/uuid"
)

// Positional CSV columns. Legacy exports carry nine columns; newer
// ones append quantity, reorder point and date added.
const (
	colID = iota
	colDescription
	colLastSold
	colShelfLife
	colDepartment
	colPrice
	colUnit
	colXFor
	colCost
	colQuantity
	colReorderPoint
	colDateAdded
)

const legacyColumns = 9

// decodeRow maps one CSV row onto an add request. Rows shorter than
// the legacy nine columns are rejected; the extended columns default
// when absent (quantity 0, reorder point 10, date added now).
func decodeRow(fields []string) (inventory.AddItemRequest, error) {
	var req inventory.AddItemRequest

	if len(fields) < legacyColumns {
		return req, fmt.Errorf("expected at least %d columns, got %d", legacyColumns, len(fields))
	}

	id, err := strconv.Atoi(fields[colID])
	if err != nil {
		return req, fmt.Errorf("invalid id %q", fields[colID])
	}
	xFor, err := strconv.Atoi(fields[colXFor])
	if err != nil {
		return req, fmt.Errorf("invalid x_for %q", fields[colXFor])
	}

	req = inventory.AddItemRequest{
		ID:          id,
		Description: fields[colDescription],
		LastSold:    fields[colLastSold],
		ShelfLife:   fields[colShelfLife],
		Department:  fields[colDepartment],
		Price:       fields[colPrice],
		Unit:        fields[colUnit],
		XFor:        xFor,
		Cost:        fields[colCost],
	}

	if len(fields) > colQuantity {
		quantity, err := strconv.Atoi(fields[colQuantity])
		if err != nil {
			return req, fmt.Errorf("invalid quantity %q", fields[colQuantity])
		}
		req.Quantity = quantity
	}
	if len(fields) > colReorderPoint {
		reorder, err := strconv.Atoi(fields[colReorderPoint])
		if err != nil {
			return req, fmt.Errorf("invalid reorder_point %q", fields[colReorderPoint])
		}
		req.ReorderPoint = &reorder
	}
	if len(fields) > colDateAdded {
		req.DateAdded = fields[colDateAdded]
	}

	return req, nil
}

// runBatch ingests every data row independently, skipping the header.
// A failed row is recorded and processing continues; there is no
// batch-level rollback.
func runBatch(ctx context.Context, store inventory.InventoryPort, rows [][]string) ImportResult {
	result := ImportResult{
		BatchID: uuid.New().String(),
		Items:   []inventory.ItemRecord{},
	}

	for i, fields := range rows {
		if i == 0 {
			continue
		}

		req, err := decodeRow(fields)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}

		rec, err := store.AddItem(ctx, req)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}

		result.Added++
		result.Items = append(result.Items, *rec)
	}

	return result
}
