package api

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"github.com/example/grocery-inventory/modules/inventory"
	"github.com/gofiber/fiber/v2"
)

const maxImportRows = 10000

// setupRoutes registers all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.handleHealth)

	api := m.app.Group("/api")
	api.Get("/items", m.handleListItems)
	api.Get("/items/:id", m.handleGetItem)
	api.Post("/items", m.handleAddItem)
	api.Get("/search", m.handleSearch)
	api.Get("/report", m.handleReport)
	api.Post("/import", m.handleImport)
}

// handleHealth responds to monitoring probes.
func (m *APIModule) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "healthy"})
}

// handleListItems returns every item in the store.
func (m *APIModule) handleListItems(c *fiber.Ctx) error {
	items, err := m.inventory.ListItems(c.Context())
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// handleGetItem returns one item by id.
func (m *APIModule) handleGetItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be an integer")
	}

	item, err := m.inventory.GetItem(c.Context(), id)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(item)
}

// handleAddItem inserts a single item.
func (m *APIModule) handleAddItem(c *fiber.Ctx) error {
	var req inventory.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := m.inventory.AddItem(c.Context(), req)
	if err != nil {
		return engineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// handleSearch returns items matching a column and search text.
// An empty result is a normal response, not an error.
func (m *APIModule) handleSearch(c *fiber.Ctx) error {
	column := c.Query("column")
	if column == "" {
		return badRequest(c, "column parameter is required")
	}
	query := c.Query("q")

	items, err := m.inventory.SearchItems(c.Context(), column, query)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// handleReport generates the analytics report. Analytics are selected
// with repeated viz parameters; none selected means all.
func (m *APIModule) handleReport(c *fiber.Ctx) error {
	var selected []string
	for _, v := range c.Context().QueryArgs().PeekMulti("viz") {
		if s := strings.TrimSpace(string(v)); s != "" {
			selected = append(selected, s)
		}
	}

	report, err := m.analytics.Report(c.Context(), selected)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(report)
}

// handleImport ingests a CSV file upload. Row splitting happens here;
// the ingest module only ever sees pre-split fields.
func (m *APIModule) handleImport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return badRequest(c, "invalid file type, needs to be .csv")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "unable to read uploaded file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Legacy and extended exports have different widths.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return badRequest(c, "unable to parse CSV file")
	}
	if len(rows) > maxImportRows {
		return badRequest(c, "CSV file has too many rows")
	}

	result, err := m.ingest.Import(c.Context(), rows)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(result)
}

// badRequest renders a 400 with a user-facing message.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// engineError maps engine sentinel errors to HTTP statuses. Anything
// unrecognized becomes a generic 500 without internal detail.
func engineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "duplicate_id",
			Message: "an item with this id already exists",
		})
	case errors.Is(err, inventory.ErrUnknownColumn):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "unknown_column",
			Message: "the requested search column does not exist",
		})
	case errors.Is(err, inventory.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "item not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "server_error",
			Message: "request could not be processed",
		})
	}
}
