package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
)

// AnalyticsPort defines the interface for requesting reports from the
// analytics module.
type AnalyticsPort interface {
	Report(ctx context.Context, selected []string) (*Report, error)
}

// analyticsAdapter implements AnalyticsPort using the service container.
type analyticsAdapter struct {
	container mono.ServiceContainer
}

// NewAnalyticsAdapter creates a new adapter for the analytics service.
func NewAnalyticsAdapter(container mono.ServiceContainer) AnalyticsPort {
	return &analyticsAdapter{container: container}
}

// Report generates a report over the current item snapshot. An empty
// selection requests every analytic.
func (a *analyticsAdapter) Report(ctx context.Context, selected []string) (*Report, error) {
	client, err := a.container.GetRequestReplyService("report")
	if err != nil {
		return nil, fmt.Errorf("failed to get report service: %w", err)
	}

	reqData, err := json.Marshal(ReportRequest{Selected: selected})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return nil, fmt.Errorf("report service call failed: %w", err)
	}

	// Check for error response
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Data, &errResp); err == nil && errResp.Error != "" {
		return nil, fmt.Errorf("report failed: %s", errResp.Error)
	}

	var report Report
	if err := json.Unmarshal(resp.Data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &report, nil
}
