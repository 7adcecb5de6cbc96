package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
)

// report handles the analytics.report service request. The item
// snapshot is fetched once so every analytic in the report is
// computed from the same data.
func (m *Module) report(ctx context.Context, req ReportRequest, _ *mono.Msg) (Report, error) {
	if m.inventory == nil {
		return Report{}, fmt.Errorf("inventory dependency not set")
	}

	items, err := m.inventory.ListItems(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to fetch item snapshot: %w", err)
	}

	return Aggregate(items, req.Selected, time.Now()), nil
}
