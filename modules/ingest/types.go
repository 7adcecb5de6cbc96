package ingest

import (
	"github.com/example/grocery-inventory/modules/inventory"
)

// ImportRequest carries pre-split CSV rows, header row included.
// Charset decoding and row splitting are the caller's job.
type ImportRequest struct {
	Rows [][]string `json:"rows"`
}

// RowError records why one row was rejected. Row numbers are
// 1-based and count the header.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a batch ingestion. Partial success is
// normal: failed rows never roll back the rest of the batch.
type ImportResult struct {
	BatchID string                 `json:"batch_id"`
	Added   int                    `json:"added"`
	Failed  int                    `json:"failed"`
	Items   []inventory.ItemRecord `json:"items"`
	Errors  []RowError             `json:"errors,omitempty"`
}
