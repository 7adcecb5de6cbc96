package analytics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/example/grocery-inventory/modules/inventory"
)

// Histogram bucket boundaries.
var (
	priceBoundaries = [4]float64{5, 10, 20, 50}
	ageBoundaries   = [3]int{30, 60, 90}
)

const (
	recentSalesWindowDays = 30
	topListSize           = 10
	uncategorized         = "Uncategorized"
)

// Aggregate computes the summary plus each selected analytic over one
// item snapshot, so all figures in a single report are mutually
// consistent. An empty selection computes everything. Unrecognized
// keys are ignored.
func Aggregate(items []inventory.ItemRecord, selected []string, now time.Time) Report {
	if len(selected) == 0 {
		selected = AllKeys
	}

	report := Report{Summary: summarize(items, now)}
	for _, key := range selected {
		switch key {
		case KeyStockHealth:
			report.StockHealth = stockHealth(items)
		case KeyDepartment:
			report.Departments = byDepartment(items)
		case KeyAge:
			report.Age = ageDistribution(items, now)
		case KeyPriceRange:
			report.PriceRanges = priceRanges(items)
		case KeyShelfLife:
			report.ShelfLife = shelfLifeCounts(items)
		case KeyTopValue:
			report.TopValue = topByValue(items)
		case KeyTopPrice:
			report.TopPrice = topByPrice(items)
		case KeyReorderTable:
			report.ReorderTable = reorderTable(items)
		}
	}
	return report
}

// summarize computes the headline metrics. Value and cost totals only
// include items whose price and cost both parse; quantity, stock and
// sales counts cover every item.
func summarize(items []inventory.ItemRecord, now time.Time) Summary {
	s := Summary{TotalItems: len(items)}

	recentThreshold := dateOf(now).AddDate(0, 0, -recentSalesWindowDays)

	for _, item := range items {
		s.TotalQuantity += item.Quantity

		if price, ok := parseCurrency(item.Price); ok {
			if cost, ok := parseCurrency(item.Cost); ok {
				q := float64(item.Quantity)
				s.TotalValue += price * q
				s.TotalCost += cost * q
			}
		}

		if sold, ok := parseDate(item.LastSold); ok && !sold.Before(recentThreshold) {
			s.RecentSales++
		}
		if item.Quantity <= item.ReorderPoint {
			s.LowStockCount++
		}
		if item.Quantity == 0 {
			s.OutOfStockCount++
		}
	}

	if s.TotalCost > 0 {
		s.ProfitMargin = (s.TotalValue - s.TotalCost) / s.TotalCost * 100
	}
	return s
}

// stockHealth buckets items into three mutually exclusive stock
// levels that always sum to the total item count.
func stockHealth(items []inventory.ItemRecord) map[string]int {
	levels := map[string]int{
		"Out of Stock":  0,
		"Low Stock":     0,
		"Healthy Stock": 0,
	}
	for _, item := range items {
		switch {
		case item.Quantity == 0:
			levels["Out of Stock"]++
		case item.Quantity <= item.ReorderPoint:
			levels["Low Stock"]++
		default:
			levels["Healthy Stock"]++
		}
	}
	return levels
}

// byDepartment counts items per department, mapping the absent
// department to "Uncategorized".
func byDepartment(items []inventory.ItemRecord) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		dept := item.Department
		if dept == "" {
			dept = uncategorized
		}
		counts[dept]++
	}
	return counts
}

// ageDistribution buckets items by days since they entered the store.
// Items without a date-added are excluded.
func ageDistribution(items []inventory.ItemRecord, now time.Time) map[string]int {
	today := dateOf(now)
	dist := map[string]int{
		"0-30 days":  0,
		"31-60 days": 0,
		"61-90 days": 0,
		"90+ days":   0,
	}
	for _, item := range items {
		added, ok := parseDate(item.DateAdded)
		if !ok {
			continue
		}
		age := int(today.Sub(added).Hours() / 24)
		switch {
		case age <= ageBoundaries[0]:
			dist["0-30 days"]++
		case age <= ageBoundaries[1]:
			dist["31-60 days"]++
		case age <= ageBoundaries[2]:
			dist["61-90 days"]++
		default:
			dist["90+ days"]++
		}
	}
	return dist
}

// priceRanges buckets parsed prices; unparseable prices are excluded.
func priceRanges(items []inventory.ItemRecord) map[string]int {
	ranges := map[string]int{
		"$0-$5":   0,
		"$5-$10":  0,
		"$10-$20": 0,
		"$20-$50": 0,
		"$50+":    0,
	}
	for _, item := range items {
		price, ok := parseCurrency(item.Price)
		if !ok {
			continue
		}
		switch {
		case price < priceBoundaries[0]:
			ranges["$0-$5"]++
		case price < priceBoundaries[1]:
			ranges["$5-$10"]++
		case price < priceBoundaries[2]:
			ranges["$10-$20"]++
		case price < priceBoundaries[3]:
			ranges["$20-$50"]++
		default:
			ranges["$50+"]++
		}
	}
	return ranges
}

// shelfLifeCounts counts items per raw shelf-life code, mapping the
// absent code to "Unknown".
func shelfLifeCounts(items []inventory.ItemRecord) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		shelf := item.ShelfLife
		if shelf == "" {
			shelf = "Unknown"
		}
		counts[shelf]++
	}
	return counts
}

// topByValue ranks the top 10 items by price times quantity. Items
// whose price does not parse are not candidates. Ties keep encounter
// order.
func topByValue(items []inventory.ItemRecord) []ValueEntry {
	entries := make([]ValueEntry, 0, len(items))
	for _, item := range items {
		price, ok := parseCurrency(item.Price)
		if !ok {
			continue
		}
		entries = append(entries, ValueEntry{
			Description: item.Description,
			Value:       price * float64(item.Quantity),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return capEntries(entries)
}

// topByPrice ranks the top 10 items by unit price. Items with a
// missing or unparseable price are excluded entirely.
func topByPrice(items []inventory.ItemRecord) []PriceEntry {
	entries := make([]PriceEntry, 0, len(items))
	for _, item := range items {
		price, ok := parseCurrency(item.Price)
		if !ok {
			continue
		}
		entries = append(entries, PriceEntry{
			Description: item.Description,
			Price:       price,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Price > entries[j].Price
	})
	return capEntries(entries)
}

// reorderTable lists up to 10 items needing restock, lowest quantity
// first. Out-of-stock items are excluded here even though the summary
// counts them as low stock; the two definitions differ on purpose.
func reorderTable(items []inventory.ItemRecord) []ReorderEntry {
	entries := []ReorderEntry{}
	for _, item := range items {
		if item.Quantity == 0 || item.Quantity > item.ReorderPoint {
			continue
		}
		dept := item.Department
		if dept == "" {
			dept = uncategorized
		}
		entries = append(entries, ReorderEntry{
			Description:  item.Description,
			Quantity:     item.Quantity,
			ReorderPoint: item.ReorderPoint,
			Department:   dept,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity < entries[j].Quantity
	})
	return capEntries(entries)
}

// capEntries truncates a ranking to the top list size.
func capEntries[T any](entries []T) []T {
	if len(entries) > topListSize {
		return entries[:topListSize]
	}
	return entries
}

// parseCurrency parses a currency amount, stripping a leading dollar
// sign and thousands separators. The boolean is false when the text
// does not parse; callers exclude the item from that computation.
func parseCurrency(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDate parses a YYYY-MM-DD record date.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(inventory.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
