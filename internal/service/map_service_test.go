package service

import (
	"context"
	"testing"

	"github.com/leegyver/land-sub002/internal/geocoder"
	"github.com/leegyver/land-sub002/internal/models"
	"github.com/leegyver/land-sub002/internal/resolver"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notFoundGeocoder always misses, forcing the district fallback path.
type notFoundGeocoder struct{}

func (notFoundGeocoder) Forward(ctx context.Context, address string) (models.Coordinate, error) {
	return models.Coordinate{}, geocoder.ErrNotFound
}

func ptr(f float64) *float64 { return &f }

func newTestMapService(repo ListingRepository) *MapService {
	res := resolver.New(notFoundGeocoder{}, "인천광역시", zerolog.Nop())
	return NewMapService(repo, res, zerolog.Nop())
}

func TestMapService_Markers(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("ListListings", mock.Anything).Return([]models.Listing{
		{ID: 1, Title: "구월동 상가", District: "남동구", Latitude: ptr(37.448), Longitude: ptr(126.731), Price: "150000000"},
		{ID: 2, Title: "송도 오피스텔", District: "연수구", Address: "송도동 23-1", MonthlyRent: "700000"},
	}, nil)
	svc := newTestMapService(mockRepo)

	view, err := svc.Markers(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Markers, 2)
	require.NotNil(t, view.Bounds)

	exact := view.Markers[0]
	assert.Equal(t, 1, exact.ListingID)
	assert.Equal(t, models.PrecisionExact, exact.Precision)
	assert.Equal(t, models.Coordinate{Lat: 37.448, Lng: 126.731}, exact.Coordinate)
	assert.False(t, exact.Approximate)

	fallback := view.Markers[1]
	assert.Equal(t, 2, fallback.ListingID)
	assert.Equal(t, models.PrecisionDistrict, fallback.Precision)
	assert.True(t, fallback.Approximate)

	for _, m := range view.Markers {
		assert.True(t, view.Bounds.Contains(m.Coordinate))
	}
	mockRepo.AssertExpectations(t)
}

func TestMapService_Markers_EmptyListings(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("ListListings", mock.Anything).Return([]models.Listing{}, nil)
	svc := newTestMapService(mockRepo)

	view, err := svc.Markers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.Bounds)
}

func TestMapService_Markers_RepositoryError(t *testing.T) {
	mockRepo := new(MockListingRepository)
	mockRepo.On("ListListings", mock.Anything).Return([]models.Listing(nil), assert.AnError)
	svc := newTestMapService(mockRepo)

	_, err := svc.Markers(context.Background())
	assert.Error(t, err)
}

func TestMapService_Marker(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockListingRepository)
		mockRepo.On("GetListing", mock.Anything, 1).Return(&models.Listing{
			ID: 1, Title: "구월동 상가", Latitude: ptr(37.448), Longitude: ptr(126.731),
		}, nil)
		svc := newTestMapService(mockRepo)

		m, err := svc.Marker(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, models.PrecisionExact, m.Precision)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockListingRepository)
		mockRepo.On("GetListing", mock.Anything, 42).Return(nil, nil)
		svc := newTestMapService(mockRepo)

		m, err := svc.Marker(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, m)
	})
}
