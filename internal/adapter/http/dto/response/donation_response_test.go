package response

import (
	"encoding/json"
	"testing"
	"time"

	"hopebridge/internal/domain/entities"
)

func TestFromDonation(t *testing.T) {
	now := time.Now().UTC()

	d := entities.Donation{
		ID:        "don-1",
		Amount:    25,
		Currency:  "usd",
		Purpose:   "General Donation",
		SectionID: "sec-1",
		ObjectID:  "obj-1",
		Status:    entities.DonationStatusCompleted,
		CreatedAt: now,
	}

	res := FromDonation(d)
	if res.Donation.ID != "don-1" || res.Donation.Status != "completed" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Donation.Amount != 25 || res.Donation.Purpose != "General Donation" {
		t.Fatalf("unexpected fields: %+v", res)
	}

	// The poller consumes {"donation":{"status":...}}.
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var envelope map[string]map[string]any
	if err := json.Unmarshal(b, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelope["donation"]["status"] != "completed" {
		t.Fatalf("unexpected envelope: %s", b)
	}
}

func TestFromCreatedIntent(t *testing.T) {
	res := FromCreatedIntent(entities.Donation{ID: "don-1"}, "pi_1_secret_x")
	if res.DonationID != "don-1" || res.ClientSecret != "pi_1_secret_x" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
