// Package compatibility scores how well two couples' wedding plans line up.
package compatibility

import (
	"math"
	"strings"
	"time"
)

// Sub-score weights. They sum to 100.
const (
	DateWeight     = 40
	LocationWeight = 30
	BudgetWeight   = 20
	CategoryWeight = 10
)

// Profile holds the wedding attributes compared by Score.
type Profile struct {
	WeddingDate      time.Time
	Location         string
	Budget           int
	VendorCategories []string
}

// Score returns a compatibility rating in [0, 100].
func Score(a, b Profile) int {
	shared := len(SharedCategories(a.VendorCategories, b.VendorCategories))
	sum := dateScore(a.WeddingDate, b.WeddingDate) +
		locationScore(a.Location, b.Location) +
		budgetScore(a.Budget, b.Budget) +
		categoryScore(shared)
	return int(math.Round(sum))
}

// DaysBetween returns the whole-day distance between two dates, rounded up.
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// dateScore loses 10 points per 30 days apart and bottoms out at 0.
func dateScore(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	days := float64(DaysBetween(a, b))
	return math.Max(0, DateWeight-(days/30)*10)
}

func locationScore(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	switch {
	case a == b:
		return LocationWeight
	case strings.Contains(a, b) || strings.Contains(b, a):
		return 20
	}

	regionA, okA := region(a)
	regionB, okB := region(b)
	if okA && okB && regionA == regionB {
		return 10
	}
	return 0
}

// region returns the trailing comma-delimited segment, e.g. "tx" for "austin, tx".
func region(location string) (string, bool) {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return "", false
	}
	r := strings.TrimSpace(location[idx+1:])
	return r, r != ""
}

func budgetScore(a, b int) float64 {
	avg := float64(a+b) / 2
	if avg <= 0 {
		return 0
	}
	diff := math.Abs(float64(a - b))
	return math.Max(0, BudgetWeight-(diff/avg)*BudgetWeight)
}

func categoryScore(shared int) float64 {
	return math.Min(CategoryWeight, float64(2*shared))
}

// SharedCategories returns the case-insensitive intersection of two
// category lists, in the order of a and without duplicates.
func SharedCategories(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, c := range b {
		inB[normalize(c)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(a))
	shared := make([]string, 0)
	for _, c := range a {
		key := normalize(c)
		if key == "" {
			continue
		}
		if _, ok := inB[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		shared = append(shared, key)
	}
	return shared
}

// EstimatedSavings is the amount a couple can expect to save by sharing
// vendors: 10% of the budget plus 3% per shared category, capped at 30%.
func EstimatedSavings(budget, sharedCount int) int {
	pct := math.Min(30, float64(10+3*sharedCount))
	return int(math.Round(float64(budget) * pct / 100))
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
