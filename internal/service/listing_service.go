package service

import (
	"context"
	"fmt"

	"github.com/leegyver/land-sub002/internal/models"
)

// ListingRepository interface for dependency injection
type ListingRepository interface {
	ListListings(ctx context.Context) ([]models.Listing, error)
	GetListing(ctx context.Context, id int) (*models.Listing, error)
}

// ListingService contains the read-side business logic for listings.
type ListingService struct {
	repo ListingRepository
}

// NewListingService creates a new listing service
func NewListingService(repo ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// Listings returns every listing as stored.
func (s *ListingService) Listings(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return listings, nil
}

// Listing returns one listing by ID, nil when it does not exist.
func (s *ListingService) Listing(ctx context.Context, id int) (*models.Listing, error) {
	if id <= 0 {
		return nil, fmt.Errorf("service: invalid listing id: %d", id)
	}
	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listing: %w", err)
	}
	return listing, nil
}
