// Package database pulls the housing sales snapshot from an Oracle table
// when the analyses run against an exported relational join instead of the
// CSV file. Rows go through the same invariant checks as the CSV loader.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"homescout/internal/config"
	"homescout/internal/types"

	_ "github.com/sijms/go-ora/v2"
)

// dsn builds a properly encoded connection string for Oracle Autonomous Database
func dsn(username, password, host, port, service string, walletLocation string) string {
	if walletLocation != "" {
		// Use wallet-based mTLS connection
		return fmt.Sprintf(
			"oracle://%s:%s@%s:%s/%s?ssl=true&wallet_location=%s",
			username, password, host, port, service, url.PathEscape(walletLocation))
	}

	// Fallback to standard connection without wallet
	return (&url.URL{
		Scheme:   "oracle",
		User:     url.UserPassword(username, password), // escapes automatically
		Host:     host + ":" + port,
		Path:     "/" + service, // keep full service name
		RawQuery: "ssl=true",    // ADB requires TCPS on 1522
	}).String()
}

// Database holds the database connection.
type Database struct {
	db *sql.DB
}

// New opens and pings an Oracle connection using the supplied settings.
func New(cfg config.Config) (*Database, error) {
	connStr := dsn(cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBService, cfg.DBWalletLocation)

	db, err := sql.Open("oracle", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// QueryHousingRecords selects the full sales snapshot in insertion order.
// Neighborhood classification happens later, at store build time.
func (d *Database) QueryHousingRecords(ctx context.Context) ([]types.HousingRecord, error) {
	query := `
		SELECT
			ID, SALE_DATE, PRICE, BEDROOMS, BATHROOMS, SQFT_LIVING, SQFT_LOT,
			FLOORS, WATERFRONT, VIEW_SCORE, CONDITION, GRADE, YR_BUILT,
			YR_RENOVATED, ZIPCODE, LAT, LONG
		FROM HOUSE_SALES
		ORDER BY ROWID
	`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query house sales: %w", err)
	}
	defer rows.Close()

	var records []types.HousingRecord
	for rows.Next() {
		var rec types.HousingRecord
		var saleDate time.Time
		var waterfront int
		err := rows.Scan(
			&rec.ID, &saleDate, &rec.Price, &rec.Bedrooms, &rec.Bathrooms, &rec.SqftLiving, &rec.SqftLot,
			&rec.Floors, &waterfront, &rec.View, &rec.Condition, &rec.Grade, &rec.YrBuilt,
			&rec.YrRenovated, &rec.Zipcode, &rec.Lat, &rec.Long,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan house sale: %w", err)
		}
		rec.SaleDate = saleDate
		rec.Waterfront = waterfront != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read house sales: %w", err)
	}

	return records, nil
}
