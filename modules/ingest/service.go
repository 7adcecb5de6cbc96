package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
)

// importRows handles the ingest.import service request.
func (m *Module) importRows(ctx context.Context, req ImportRequest, _ *mono.Msg) (ImportResult, error) {
	if m.inventory == nil {
		return ImportResult{}, fmt.Errorf("inventory dependency not set")
	}
	if len(req.Rows) == 0 {
		return ImportResult{}, fmt.Errorf("no rows to import")
	}

	result := runBatch(ctx, m.inventory, req.Rows)
	log.Printf("[ingest] Batch %s: %d added, %d failed", result.BatchID, result.Added, result.Failed)
	return result, nil
}
