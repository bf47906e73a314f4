package donorflow

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiptStoreRejectsUnknownURLs(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://nope")

	_, err := NewReceiptStore()
	assert.Error(t, err)
}

func TestReceiptStoreRoundTrip(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:"+filepath.Join(t.TempDir(), "receipts.db"))

	store, err := NewReceiptStore()
	require.NoError(t, err)

	ctx := context.Background()

	first := Receipt{
		DonationID: "don-1",
		Amount:     25,
		Purpose:    "General Donation",
		DonorName:  "Jane Doe",
		Status:     "completed",
		CreatedAt:  time.Now().Add(-time.Minute).UTC(),
	}
	second := Receipt{
		DonationID: "don-2",
		Amount:     40,
		Purpose:    "Program: Clean Water",
		DonorName:  "Anonymous",
		Status:     "completed",
		CreatedAt:  time.Now().UTC(),
	}

	require.NoError(t, store.SaveReceipt(ctx, first))
	require.NoError(t, store.SaveReceipt(ctx, second))

	receipts, err := store.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, "don-2", receipts[0].DonationID, "newest receipt first")
	assert.Equal(t, "don-1", receipts[1].DonationID)
	assert.Equal(t, 25.0, receipts[1].Amount)

	// Saving the same donation again updates its status instead of duplicating it.
	first.Status = "refunded"
	require.NoError(t, store.SaveReceipt(ctx, first))

	receipts, err = store.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "refunded", receipts[1].Status)
}
