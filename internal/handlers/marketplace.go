package handlers

import (
	"net/http"
	"strings"

	"github.com/sbilibin2017/matchrimoney/internal/models"
)

// marketplaceFilter reads the marketplace query parameters.
func marketplaceFilter(r *http.Request) (models.MarketplaceFilter, error) {
	q := r.URL.Query()
	f := models.MarketplaceFilter{
		Location: strings.TrimSpace(q.Get("location")),
		Theme:    strings.TrimSpace(q.Get("theme")),
		SortBy:   q.Get("sort_by"),
	}

	var err error
	if f.MinBudget, err = queryInt(r, "min_budget"); err != nil {
		return f, err
	}
	if f.MaxBudget, err = queryInt(r, "max_budget"); err != nil {
		return f, err
	}
	if f.DateFrom, err = queryDate(r, "date_from"); err != nil {
		return f, err
	}
	if f.DateTo, err = queryDate(r, "date_to"); err != nil {
		return f, err
	}
	if f.Page, f.PageSize, err = pageQuery(r); err != nil {
		return f, err
	}

	// categories=a,b and categories=a&categories=b are both accepted
	for _, raw := range q["categories"] {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Categories = append(f.Categories, c)
			}
		}
	}
	return f, nil
}

// NewMarketplaceHandler returns an HTTP handler listing other couples with their compatibility.
// @Summary Browse the marketplace
// @Description Visible, completed profiles other than the caller, scored against the caller
// @Tags users
// @Produce json
// @Param location query string false "Location substring"
// @Param theme query string false "Theme substring"
// @Param min_budget query int false "Minimum budget"
// @Param max_budget query int false "Maximum budget"
// @Param date_from query string false "Earliest wedding date, YYYY-MM-DD"
// @Param date_to query string false "Latest wedding date, YYYY-MM-DD"
// @Param categories query string false "Comma separated vendor categories, any overlap"
// @Param sort_by query string false "compatibility (default), wedding_date or budget"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, at most 50"
// @Success 200 {object} models.MarketplacePage "Marketplace page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/marketplace [get]
// @Security BearerAuth
func NewMarketplaceHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		f, err := marketplaceFilter(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := svc.Marketplace(r.Context(), userID, f)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetUserHandler returns an HTTP handler for another couple's public profile.
// @Summary Get a couple's profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.MarketplaceEntry "Profile with compatibility"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc ProfileManager, getUserID UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r, getUserID)
		if !ok {
			return
		}

		targetID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		entry, err := svc.GetUser(r.Context(), userID, targetID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}
