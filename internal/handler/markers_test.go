package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMapService is a mock implementation of the MapService interface
type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) Markers(ctx context.Context) (*models.MapView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MapView), args.Error(1)
}

func (m *MockMapService) Marker(ctx context.Context, id int) (*models.MarkerView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MarkerView), args.Error(1)
}

func TestMapHandler_Markers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful render", func(t *testing.T) {
		view := &models.MapView{
			Markers: []models.MarkerView{
				{
					ListingID:  1,
					Title:      "구월동 상가",
					Coordinate: models.Coordinate{Lat: 37.448, Lng: 126.731},
					Precision:  models.PrecisionExact,
					PriceLines: []string{"매매가 1억 5000만원"},
				},
			},
			Bounds: &models.Bounds{MinLat: 37.448, MinLng: 126.731, MaxLat: 37.448, MaxLng: 126.731},
		}
		mockSvc := new(MockMapService)
		mockSvc.On("Markers", mock.Anything).Return(view, nil)
		h := NewMapHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/map/markers", nil)

		h.Markers(c)

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Contains(t, got, "markers")
		assert.Contains(t, got, "bounds")
		assert.Contains(t, string(got["markers"]), `"precision":"exact"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(MockMapService)
		mockSvc.On("Markers", mock.Anything).Return(nil, assert.AnError)
		h := NewMapHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/map/markers", nil)

		h.Markers(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMapHandler_Marker(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		param          string
		mockMarker     *models.MarkerView
		mockError      error
		mockCalled     bool
		expectedStatus int
	}{
		{
			name:           "invalid id",
			param:          "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "found",
			param: "1",
			mockMarker: &models.MarkerView{
				ListingID: 1,
				Precision: models.PrecisionDistrict,
			},
			mockCalled:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			param:          "42",
			mockCalled:     true,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMapService)
			if tt.mockCalled {
				mockSvc.On("Marker", mock.Anything, mock.Anything).Return(tt.mockMarker, tt.mockError)
			}
			h := NewMapHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/map/markers/"+tt.param, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			h.Marker(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
