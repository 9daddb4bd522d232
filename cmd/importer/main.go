package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/leegyver/land-sub002/internal/config"

	"github.com/jackc/pgx/v5"
)

// ListingRecord is one CSV row. Columns: title, district, address, latitude,
// longitude, price, deposit, deposit_amount, monthly_rent, maintenance_fee.
// Coordinates may be empty; price columns are kept as raw text.
type ListingRecord struct {
	Title          string
	District       string
	Address        string
	Lat            *float64
	Lng            *float64
	Price          string
	Deposit        string
	DepositAmount  string
	MonthlyRent    string
	MaintenanceFee string
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if err := createTableIfNotExists(conn); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	if err := insertRecords(conn, records); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Import complete: %d listings\n", len(records))
}

func parseCSV(path string) ([]ListingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var records []ListingRecord
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		if len(row) < 10 {
			return nil, fmt.Errorf("row %d: expected 10 columns, got %d", i+1, len(row))
		}

		rec := ListingRecord{
			Title:          row[0],
			District:       row[1],
			Address:        row[2],
			Price:          row[5],
			Deposit:        row[6],
			DepositAmount:  row[7],
			MonthlyRent:    row[8],
			MaintenanceFee: row[9],
		}
		if row[3] != "" && row[4] != "" {
			lat, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad latitude %q", i+1, row[3])
			}
			lng, err := strconv.ParseFloat(row[4], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad longitude %q", i+1, row[4])
			}
			rec.Lat = &lat
			rec.Lng = &lng
		}
		records = append(records, rec)
	}

	return records, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	_, err := conn.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS listings (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			district TEXT,
			address TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			price TEXT,
			deposit TEXT,
			deposit_amount TEXT,
			monthly_rent TEXT,
			maintenance_fee TEXT
		)
	`)
	return err
}

func insertRecords(conn *pgx.Conn, records []ListingRecord) error {
	ctx := context.Background()
	for i, rec := range records {
		_, err := conn.Exec(ctx, `
			INSERT INTO listings (
				title, district, address, latitude, longitude,
				price, deposit, deposit_amount, monthly_rent, maintenance_fee
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
			rec.Title, rec.District, rec.Address, rec.Lat, rec.Lng,
			nullable(rec.Price), nullable(rec.Deposit), nullable(rec.DepositAmount),
			nullable(rec.MonthlyRent), nullable(rec.MaintenanceFee),
		)
		if err != nil {
			return fmt.Errorf("record %d (%s): %w", i+1, rec.Title, err)
		}
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
