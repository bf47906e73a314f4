package entities

import "time"

// DonationStatus represents the backend-authoritative settlement state of a
// donation. The poller on the donor side observes these values until they
// reach a terminal one.

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
)

// Terminal reports whether the status ends the donation lifecycle.
func (s DonationStatus) Terminal() bool {
	return s == DonationStatusCompleted || s == DonationStatusFailed
}

// Donation is the donation record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_intent_id-index): provider_intent_id
//
// Purpose references:
//   - SectionID/ObjectID back-reference the content object the donor was
//     viewing (program, campaign or news item). Both are empty for fixed
//     organizational purposes such as "General Donation".

type Donation struct {
	ID               string         `json:"id"`
	Amount           float64        `json:"amount"`
	Currency         string         `json:"currency"`
	DonorName        string         `json:"donor_name"`
	DonorEmail       string         `json:"donor_email"`
	Purpose          string         `json:"purpose"`
	SectionID        string         `json:"section_id,omitempty"`
	ObjectID         string         `json:"object_id,omitempty"`
	Status           DonationStatus `json:"status"`
	ProviderIntentID string         `json:"provider_intent_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
