package donorflow

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Receipt records a settled donation for the donor's local history.
type Receipt struct {
	DonationID string    `json:"donationId"`
	Amount     float64   `json:"amount"`
	Purpose    string    `json:"purpose"`
	DonorName  string    `json:"donorName"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReceiptStore persists donation receipts.
type ReceiptStore interface {
	SaveReceipt(context.Context, Receipt) error
	ListReceipts(context.Context) ([]Receipt, error)
}

type defaultReceiptStore struct {
	db *sql.DB
}

const receiptSchema = `
CREATE TABLE IF NOT EXISTS receipts (
	donation_id TEXT PRIMARY KEY,
	amount REAL NOT NULL,
	purpose TEXT NOT NULL,
	donor_name TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// NewReceiptStore opens the receipt database named by DATABASE_URL. A
// file: URL uses local sqlite; a libsql: URL uses a remote Turso database.
func NewReceiptStore() (ReceiptStore, error) {
	databaseURL := os.Getenv("DATABASE_URL")

	var driver string

	switch {
	case strings.HasPrefix(databaseURL, "libsql://"):
		driver = "libsql"
	case strings.HasPrefix(databaseURL, "file:"):
		driver = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL: %s", databaseURL)
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("encountered an error connecting to the database: %s", err)
	}

	if _, err := db.Exec(receiptSchema); err != nil {
		return nil, fmt.Errorf("encountered an error preparing the receipts table: %s", err)
	}

	return defaultReceiptStore{db}, nil
}

func (s defaultReceiptStore) SaveReceipt(ctx context.Context, receipt Receipt) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO receipts (donation_id, amount, purpose, donor_name, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(donation_id) DO UPDATE SET status = excluded.status`,
		receipt.DonationID, receipt.Amount, receipt.Purpose, receipt.DonorName, receipt.Status, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("encountered an error persisting a receipt: %s", err)
	}

	return nil
}

func (s defaultReceiptStore) ListReceipts(ctx context.Context) ([]Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT donation_id, amount, purpose, donor_name, status, created_at
		 FROM receipts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("encountered an error fetching receipts: %s", err)
	}
	defer rows.Close()

	var receipts []Receipt
	for rows.Next() {
		var receipt Receipt
		if err := rows.Scan(&receipt.DonationID, &receipt.Amount, &receipt.Purpose, &receipt.DonorName, &receipt.Status, &receipt.CreatedAt); err != nil {
			return nil, fmt.Errorf("encountered an error reading a receipt row: %s", err)
		}
		receipts = append(receipts, receipt)
	}

	return receipts, rows.Err()
}
