package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads listings from PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const listingColumns = `
	id,
	title,
	district,
	address,
	latitude,
	longitude,
	price,
	deposit,
	deposit_amount,
	monthly_rent,
	maintenance_fee
`

// ListListings returns every listing, newest first.
func (r *Repository) ListListings(ctx context.Context) ([]models.Listing, error) {
	sql := `SELECT` + listingColumns + `FROM listings ORDER BY id DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return listings, nil
}

// GetListing returns one listing by ID, or nil when it does not exist.
func (r *Repository) GetListing(ctx context.Context, id int) (*models.Listing, error) {
	sql := `SELECT` + listingColumns + `FROM listings WHERE id = $1`

	l, err := scanListing(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get listing %d: %w", id, err)
	}

	return &l, nil
}

func scanListing(row pgx.Row) (models.Listing, error) {
	var l models.Listing
	var district, address *string
	var price, deposit, depositAmount, monthlyRent, maintFee *string

	err := row.Scan(
		&l.ID,
		&l.Title,
		&district,
		&address,
		&l.Latitude,
		&l.Longitude,
		&price,
		&deposit,
		&depositAmount,
		&monthlyRent,
		&maintFee,
	)
	if err != nil {
		return models.Listing{}, err
	}
	l.District = deref(district)
	l.Address = deref(address)
	l.Price = models.Amount(deref(price))
	l.Deposit = models.Amount(deref(deposit))
	l.DepositAmount = models.Amount(deref(depositAmount))
	l.MonthlyRent = models.Amount(deref(monthlyRent))
	l.MaintenanceFee = models.Amount(deref(maintFee))
	return l, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
