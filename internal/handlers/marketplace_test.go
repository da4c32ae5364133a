package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID := uuid.New()

	t.Run("filters are passed through", func(t *testing.T) {
		from := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
		mockSvc.EXPECT().Marketplace(gomock.Any(), userID, models.MarketplaceFilter{
			Location:   "Austin",
			Theme:      "rustic",
			MinBudget:  10000,
			MaxBudget:  30000,
			DateFrom:   &from,
			DateTo:     &to,
			Categories: []string{"photographer", "venue", "florist"},
			SortBy:     "budget",
			Page:       2,
			PageSize:   10,
		}).Return(&models.MarketplacePage{
			Users:      []models.MarketplaceEntry{},
			Pagination: models.NewPagination(2, 10, 11),
		}, nil)

		target := "/users/marketplace?location=Austin&theme=rustic&min_budget=10000&max_budget=30000" +
			"&date_from=2027-01-01&date_to=2027-12-31&categories=photographer,venue&categories=florist" +
			"&sort_by=budget&page=2&page_size=10"
		w := httptest.NewRecorder()
		NewMarketplaceHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.MarketplacePage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(11), resp.Pagination.Total)
		assert.True(t, resp.Pagination.HasPrev)
		assert.False(t, resp.Pagination.HasNext)
	})

	t.Run("bad query values", func(t *testing.T) {
		for _, q := range []string{"min_budget=abc", "page=-1", "date_from=tomorrow"} {
			w := httptest.NewRecorder()
			NewMarketplaceHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/marketplace?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("invalid sort from service", func(t *testing.T) {
		mockSvc.EXPECT().Marketplace(gomock.Any(), userID, models.MarketplaceFilter{SortBy: "name"}).
			Return(nil, apperrors.Validation("sort_by must be one of compatibility, wedding_date, budget"))

		w := httptest.NewRecorder()
		NewMarketplaceHandler(mockSvc, userGetter(userID)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/marketplace?sort_by=name", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileManager(ctrl)
	userID, targetID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetUser(gomock.Any(), userID, targetID).Return(&models.MarketplaceEntry{
			PublicProfile:      &models.PublicProfile{UserID: targetID, CoupleName: "Amy & Ben"},
			CompatibilityScore: 92,
			SharedCategories:   []string{"venue"},
			EstimatedSavings:   2600,
		}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/"+targetID.String(), nil), map[string]string{"id": targetID.String()})
		w := httptest.NewRecorder()
		NewGetUserHandler(mockSvc, userGetter(userID)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"compatibility_score":92`)
		assert.Contains(t, w.Body.String(), `"couple_name":"Amy \u0026 Ben"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/nope", nil), map[string]string{"id": "nope"})
		w := httptest.NewRecorder()
		NewGetUserHandler(mockSvc, userGetter(userID)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("hidden user", func(t *testing.T) {
		mockSvc.EXPECT().GetUser(gomock.Any(), userID, targetID).Return(nil, apperrors.NotFound("user not found"))

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/"+targetID.String(), nil), map[string]string{"id": targetID.String()})
		w := httptest.NewRecorder()
		NewGetUserHandler(mockSvc, userGetter(userID)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
