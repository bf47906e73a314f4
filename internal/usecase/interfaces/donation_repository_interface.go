package interfaces

import (
	"context"
	"hopebridge/internal/domain/entities"
)

// IDonationRepository abstracts DynamoDB persistence for Donation.

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	GetByProviderIntentID(ctx context.Context, intentID string) (entities.Donation, error)
	UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error)
}
