package analytics

// Analytic keys recognized by the aggregator. The summary is always
// computed and has no key of its own.
const (
	KeyStockHealth  = "stock_health"
	KeyDepartment   = "department"
	KeyAge          = "age"
	KeyPriceRange   = "price_range"
	KeyShelfLife    = "shelf_life"
	KeyTopValue     = "top_value"
	KeyTopPrice     = "top_price"
	KeyReorderTable = "reorder_table"
)

// AllKeys lists every selectable analytic, in display order.
var AllKeys = []string{
	KeyStockHealth,
	KeyDepartment,
	KeyAge,
	KeyPriceRange,
	KeyShelfLife,
	KeyTopValue,
	KeyTopPrice,
	KeyReorderTable,
}

// Summary holds the headline inventory metrics. It is computed for
// every report regardless of which analytics were selected.
type Summary struct {
	TotalItems      int     `json:"total_items"`
	TotalValue      float64 `json:"total_value"`
	TotalCost       float64 `json:"total_cost"`
	ProfitMargin    float64 `json:"total_profit_margin"`
	TotalQuantity   int     `json:"total_quantity"`
	RecentSales     int     `json:"recent_sales"`
	LowStockCount   int     `json:"low_stock_count"`
	OutOfStockCount int     `json:"out_of_stock_count"`
}

// ValueEntry is one row of the top-value ranking.
type ValueEntry struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// PriceEntry is one row of the top-price ranking.
type PriceEntry struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ReorderEntry is one row of the reorder table.
type ReorderEntry struct {
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorder_point"`
	Department   string `json:"department"`
}

// Report is the aggregation result. Analytics that were not selected
// are left nil and omitted from the serialized form; callers supply
// their own display defaults.
type Report struct {
	Summary      Summary        `json:"summary"`
	StockHealth  map[string]int `json:"stock_health,omitempty"`
	Departments  map[string]int `json:"department,omitempty"`
	Age          map[string]int `json:"age,omitempty"`
	PriceRanges  map[string]int `json:"price_range,omitempty"`
	ShelfLife    map[string]int `json:"shelf_life,omitempty"`
	TopValue     []ValueEntry   `json:"top_value,omitempty"`
	TopPrice     []PriceEntry   `json:"top_price,omitempty"`
	ReorderTable []ReorderEntry `json:"reorder_table,omitempty"`
}

// ReportRequest is the request for generating a report. An empty
// selection means every analytic.
type ReportRequest struct {
	Selected []string `json:"viz,omitempty"`
}
