package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Repository provides access to grocery item storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new inventory repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert saves a new item, rejecting duplicate ids. The existence
// check and the insert run in one transaction so a losing concurrent
// insert fails with ErrDuplicateID instead of clobbering the winner.
func (r *Repository) Insert(item *Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Item{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing item: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		if err := tx.Create(item).Error; err != nil {
			// A losing concurrent insert can slip past the count
			// check; the primary key constraint still catches it.
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
				return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
			}
			return fmt.Errorf("failed to insert item: %w", err)
		}
		return nil
	})
}

// FindByID retrieves an item by its id.
func (r *Repository) FindByID(id int) (*Item, error) {
	var item Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return &item, nil
}

// FindAll retrieves every item, ordered by id ascending.
func (r *Repository) FindAll() ([]*Item, error) {
	var items []*Item
	if err := r.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	return items, nil
}

// Search retrieves items matching the given column and search text,
// ordered by id ascending.
//
// Exact-integer columns return an empty set for non-numeric input
// rather than an error; date columns are compared against their
// YYYY-MM-DD text form; everything else is a case-insensitive
// pattern match. Unknown columns fail with ErrUnknownColumn.
func (r *Repository) Search(column, query string) ([]*Item, error) {
	class, err := resolveColumn(column)
	if err != nil {
		return nil, err
	}

	items := []*Item{}
	q := r.db.Model(&Item{})

	switch class {
	case columnInt:
		if !isAllDigits(query) {
			return items, nil
		}
		n, err := strconv.Atoi(query)
		if err != nil {
			// All digits but out of int range: nothing can match.
			return items, nil
		}
		q = q.Where(column+" = ?", n)
	case columnDate:
		q = q.Where("strftime('%Y-%m-%d', "+column+") LIKE ?", buildPattern(query))
	case columnText:
		q = q.Where("LOWER("+column+") LIKE LOWER(?)", buildPattern(query))
	}

	if err := q.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}

// Count returns the number of items in the store.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
