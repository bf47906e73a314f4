package response

import (
	"time"

	"hopebridge/internal/domain/entities"
)

// IntentCreatedResponse is the successful intent-creation reply; the donor
// side hands ClientSecret to the embedded payment element and polls status
// by DonationID.
type IntentCreatedResponse struct {
	ClientSecret string `json:"clientSecret"`
	DonationID   string `json:"donationId"`
}

type DonationBody struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Purpose   string    `json:"purpose"`
	SectionID string    `json:"sectionId,omitempty"`
	ObjectID  string    `json:"objectId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DonationStatusResponse wraps the polled donation in the envelope the
// status poller consumes: {"donation": {"status": ...}}.
type DonationStatusResponse struct {
	Donation DonationBody `json:"donation"`
}

func FromCreatedIntent(ci entities.Donation, clientSecret string) IntentCreatedResponse {
	return IntentCreatedResponse{
		ClientSecret: clientSecret,
		DonationID:   ci.ID,
	}
}

func FromDonation(d entities.Donation) DonationStatusResponse {
	return DonationStatusResponse{
		Donation: DonationBody{
			ID:        d.ID,
			Amount:    d.Amount,
			Currency:  d.Currency,
			Purpose:   d.Purpose,
			SectionID: d.SectionID,
			ObjectID:  d.ObjectID,
			Status:    string(d.Status),
			CreatedAt: d.CreatedAt,
		},
	}
}
