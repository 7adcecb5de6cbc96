package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
)

// IngestPort defines the interface for submitting import batches to
// the ingest module.
type IngestPort interface {
	Import(ctx context.Context, rows [][]string) (*ImportResult, error)
}

// ingestAdapter implements IngestPort using the service container.
type ingestAdapter struct {
	container mono.ServiceContainer
}

// NewIngestAdapter creates a new adapter for the ingest service.
func NewIngestAdapter(container mono.ServiceContainer) IngestPort {
	return &ingestAdapter{container: container}
}

// Import ingests pre-split CSV rows, header included, returning the
// per-row outcome of the batch.
func (a *ingestAdapter) Import(ctx context.Context, rows [][]string) (*ImportResult, error) {
	client, err := a.container.GetRequestReplyService("import")
	if err != nil {
		return nil, fmt.Errorf("failed to get import service: %w", err)
	}

	reqData, err := json.Marshal(ImportRequest{Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return nil, fmt.Errorf("import service call failed: %w", err)
	}

	// Check for error response
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Data, &errResp); err == nil && errResp.Error != "" {
		return nil, fmt.Errorf("import failed: %s", errResp.Error)
	}

	var result ImportResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
