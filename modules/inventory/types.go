package inventory

// ItemRecord is the versioned wire representation of an Item.
// Dates are formatted as YYYY-MM-DD; empty strings mean absent.
type ItemRecord struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	LastSold     string `json:"last_sold,omitempty"`
	ShelfLife    string `json:"shelf_life"`
	Department   string `json:"department,omitempty"`
	Price        string `json:"price"`
	Unit         string `json:"unit"`
	XFor         int    `json:"x_for"`
	Cost         string `json:"cost"`
	Quantity     int    `json:"quantity"`
	ReorderPoint int    `json:"reorder_point"`
	DateAdded    string `json:"date_added,omitempty"`
}

// AddItemRequest is the request for adding a single item.
// LastSold and DateAdded accept YYYY-MM-DD text; ReorderPoint defaults
// to 10 when omitted, Quantity to 0.
type AddItemRequest struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	LastSold     string `json:"last_sold,omitempty"`
	ShelfLife    string `json:"shelf_life"`
	Department   string `json:"department,omitempty"`
	Price        string `json:"price"`
	Unit         string `json:"unit"`
	XFor         int    `json:"x_for"`
	Cost         string `json:"cost"`
	Quantity     int    `json:"quantity,omitempty"`
	ReorderPoint *int   `json:"reorder_point,omitempty"`
	DateAdded    string `json:"date_added,omitempty"`
}

// AddItemResponse echoes the persisted item back as confirmation.
type AddItemResponse struct {
	Item ItemRecord `json:"item"`
}

// GetItemRequest is the request for fetching one item by id.
type GetItemRequest struct {
	ID int `json:"id"`
}

// SearchItemsRequest is the request for searching items by column.
type SearchItemsRequest struct {
	Column string `json:"column"`
	Query  string `json:"query"`
}

// SearchItemsResponse is the response containing matched items,
// ordered by id ascending.
type SearchItemsResponse struct {
	Items []ItemRecord `json:"items"`
	Total int          `json:"total"`
}

// ListItemsRequest is the request for listing all items.
type ListItemsRequest struct{}

// ListItemsResponse is the response containing every item in the store.
type ListItemsResponse struct {
	Items []ItemRecord `json:"items"`
	Total int          `json:"total"`
}
