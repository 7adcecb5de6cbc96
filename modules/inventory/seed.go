package inventory

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// itemTemplate bounds the randomized values for one kind of grocery
// item so generated demo data stays realistic.
type itemTemplate struct {
	description string
	department  string
	priceMin    float64
	priceMax    float64
	unit        string
	shelfLife   string
}

// demoCorpus is a small corpus of common grocery items used for demo
// data generation.
var demoCorpus = []itemTemplate{
	{"Bananas", "Produce", 0.49, 0.79, "lb", "5d"},
	{"Fuji Apples", "Produce", 1.29, 2.49, "lb", "14d"},
	{"Romaine Lettuce", "Produce", 1.99, 3.49, "ea", "7d"},
	{"Baby Carrots", "Produce", 1.49, 2.29, "bag", "21d"},
	{"Russet Potatoes", "Produce", 3.99, 5.99, "bag", "30d"},
	{"Whole Milk", "Dairy", 2.99, 4.49, "gal", "14d"},
	{"Large Eggs", "Dairy", 2.49, 4.99, "doz", "30d"},
	{"Cheddar Cheese", "Dairy", 3.99, 6.99, "ea", "60d"},
	{"Greek Yogurt", "Dairy", 4.49, 6.49, "ea", "21d"},
	{"Salted Butter", "Dairy", 3.49, 5.49, "ea", "90d"},
	{"Sourdough Bread", "Bakery", 3.49, 5.99, "ea", "5d"},
	{"Bagels", "Bakery", 2.99, 4.99, "bag", "7d"},
	{"Croissants", "Bakery", 4.99, 7.99, "box", "3d"},
	{"Ground Beef", "Meat", 4.99, 7.99, "lb", "3d"},
	{"Chicken Breast", "Meat", 3.99, 6.49, "lb", "3d"},
	{"Bacon", "Meat", 5.49, 8.99, "ea", "14d"},
	{"Atlantic Salmon", "Seafood", 9.99, 14.99, "lb", "2d"},
	{"Frozen Peas", "Frozen", 1.49, 2.49, "bag", "365d"},
	{"Vanilla Ice Cream", "Frozen", 3.99, 6.99, "ea", "180d"},
	{"Frozen Pizza", "Frozen", 4.99, 8.99, "ea", "270d"},
	{"Spaghetti", "Pantry", 1.29, 2.49, "box", "365d"},
	{"Marinara Sauce", "Pantry", 2.49, 4.49, "jar", "365d"},
	{"Long Grain Rice", "Pantry", 2.99, 5.99, "bag", "365d"},
	{"Black Beans", "Pantry", 0.99, 1.79, "can", "365d"},
	{"Peanut Butter", "Pantry", 2.99, 5.49, "jar", "270d"},
	{"Olive Oil", "Pantry", 7.99, 12.99, "btl", "365d"},
	{"Orange Juice", "Beverages", 3.49, 5.49, "ea", "14d"},
	{"Sparkling Water", "Beverages", 3.99, 6.99, "case", "365d"},
	{"Ground Coffee", "Beverages", 8.99, 13.99, "bag", "180d"},
	{"Tortilla Chips", "Snacks", 2.99, 4.99, "bag", "60d"},
}

// generateDemoItems produces n randomized add requests with ids
// starting at firstID. Roughly one item in five has never been sold.
func generateDemoItems(n, firstID int, rng *rand.Rand, now time.Time) []AddItemRequest {
	items := make([]AddItemRequest, 0, n)
	for i := 0; i < n; i++ {
		tmpl := demoCorpus[rng.Intn(len(demoCorpus))]

		price := tmpl.priceMin + rng.Float64()*(tmpl.priceMax-tmpl.priceMin)
		costRatio := 0.4 + rng.Float64()*0.2
		reorder := 5 + rng.Intn(21)

		req := AddItemRequest{
			ID:           firstID + i,
			Description:  tmpl.description,
			ShelfLife:    tmpl.shelfLife,
			Department:   tmpl.department,
			Price:        fmt.Sprintf("%.2f", price),
			Unit:         tmpl.unit,
			XFor:         weightedXFor(rng),
			Cost:         fmt.Sprintf("%.2f", price*costRatio),
			Quantity:     rng.Intn(101),
			ReorderPoint: &reorder,
			DateAdded:    now.AddDate(0, 0, -rng.Intn(91)).Format(DateLayout),
		}
		if rng.Float64() >= 0.2 {
			req.LastSold = now.AddDate(0, 0, -rng.Intn(31)).Format(DateLayout)
		}
		items = append(items, req)
	}
	return items
}

// weightedXFor picks a bulk-pricing multiplier; singles dominate.
func weightedXFor(rng *rand.Rand) int {
	switch v := rng.Float64(); {
	case v < 0.85:
		return 1
	case v < 0.95:
		return 2
	case v < 0.99:
		return 3
	default:
		return 4
	}
}

// seedDemoItems fills an empty store with n randomized items. A store
// that already has items is left alone so restarts stay idempotent.
func (m *Module) seedDemoItems(n int) error {
	count, err := m.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[inventory] Store already has %d items, skipping demo seed", count)
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()
	for _, req := range generateDemoItems(n, 1, rng, now) {
		if err := m.repo.Insert(NewItem(req, now)); err != nil {
			return err
		}
	}

	log.Printf("[inventory] Seeded %d demo items", n)
	return nil
}
