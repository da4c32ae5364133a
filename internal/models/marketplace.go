package models

import "time"

// Marketplace sort orders.
const (
	SortByCompatibility = "compatibility"
	SortByWeddingDate   = "wedding_date"
	SortByBudget        = "budget"
)

// MarketplaceFilter narrows the marketplace listing.
type MarketplaceFilter struct {
	Location   string
	Theme      string
	MinBudget  int
	MaxBudget  int
	DateFrom   *time.Time
	DateTo     *time.Time
	Categories []string
	SortBy     string
	Page       int
	PageSize   int
}

// MarketplaceEntry is a listed couple with its score against the viewer.
type MarketplaceEntry struct {
	*PublicProfile
	CompatibilityScore int      `json:"compatibility_score"`
	SharedCategories   []string `json:"shared_categories"`
	EstimatedSavings   int      `json:"estimated_savings"`
}

// MarketplacePage is a page of the marketplace listing.
type MarketplacePage struct {
	Users      []MarketplaceEntry `json:"users"`
	Pagination Pagination         `json:"pagination"`
}
