package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDonationNotFound           = errors.New("donation not found")
	ErrInvalidDonationID          = errors.New("invalid donation id")
	ErrInvalidDonationAmount      = errors.New("invalid donation amount")
	ErrInvalidProviderIntentID    = errors.New("invalid provider intent id")
	ErrInvalidStatusTransition    = errors.New("invalid donation status transition")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const (
	defaultCurrency = "usd"
	defaultPurpose  = "General Donation"
)

// CreateDonationInput is the donor-submitted draft as received by the API.
// Anonymity is resolved on the donor side before submission, so the name and
// email arrive already substituted ("Anonymous" / "").
type CreateDonationInput struct {
	Amount     float64
	DonorName  string
	DonorEmail string
	Purpose    string
	SectionID  string
	ObjectID   string
}

// CreatedIntent pairs the persisted donation with the provider client secret
// the embedded payment element confirms against.
type CreatedIntent struct {
	Donation     entities.Donation
	ClientSecret string
}

// IDonationUseCase exposes the donation flow operations:
//   - CreateIntent: open a provider payment intent and persist the donation
//     as pending.
//   - GetByID: status poll target.
//   - ApplyProviderEvent: webhook-driven transition pending -> completed/failed.

type IDonationUseCase interface {
	CreateIntent(ctx context.Context, in CreateDonationInput) (CreatedIntent, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	ApplyProviderEvent(ctx context.Context, providerIntentID string, status entities.DonationStatus) (entities.Donation, error)
}

type DonationUseCase struct {
	repo    interfaces.IDonationRepository
	gateway interfaces.IPaymentGateway
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

func NewDonationUseCase(repo interfaces.IDonationRepository, gateway interfaces.IPaymentGateway) *DonationUseCase {
	return &DonationUseCase{repo: repo, gateway: gateway}
}

func (u *DonationUseCase) CreateIntent(ctx context.Context, in CreateDonationInput) (CreatedIntent, error) {
	log.Printf("[donation][usecase] create-intent start amount=%.2f purpose=%q", in.Amount, in.Purpose)

	// Amount validation happens before any gateway call.
	if in.Amount <= 0 {
		log.Printf("[donation][usecase] invalid amount %.2f", in.Amount)
		return CreatedIntent{}, ErrInvalidDonationAmount
	}
	if u.gateway == nil {
		return CreatedIntent{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return CreatedIntent{}, errors.New("donation repository not configured")
	}

	purpose := strings.TrimSpace(in.Purpose)
	if purpose == "" {
		purpose = defaultPurpose
	}

	id := uuid.NewString()
	intentID, clientSecret, err := u.gateway.CreateIntent(ctx, interfaces.IntentRequest{
		Amount:      in.Amount,
		Currency:    defaultCurrency,
		Description: fmt.Sprintf("Donation: %s", purpose),
		Metadata: map[string]string{
			"donation_id": id,
			"purpose":     purpose,
			"section_id":  in.SectionID,
			"object_id":   in.ObjectID,
		},
	})
	if err != nil {
		log.Printf("[donation][usecase] payment gateway failed donation_id=%s err=%v", id, err)
		if isGatewayUnauthorized(err) {
			return CreatedIntent{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return CreatedIntent{}, ErrPaymentGatewayBadRequest
		}
		return CreatedIntent{}, err
	}

	now := time.Now().UTC()
	d := entities.Donation{
		ID:               id,
		Amount:           in.Amount,
		Currency:         defaultCurrency,
		DonorName:        strings.TrimSpace(in.DonorName),
		DonorEmail:       strings.TrimSpace(in.DonorEmail),
		Purpose:          purpose,
		SectionID:        in.SectionID,
		ObjectID:         in.ObjectID,
		Status:           entities.DonationStatusPending,
		ProviderIntentID: intentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[donation][usecase] repository create failed donation_id=%s err=%v", id, err)
		return CreatedIntent{}, err
	}
	log.Printf("[donation][usecase] create-intent success donation_id=%s provider_intent_id=%s", created.ID, intentID)

	return CreatedIntent{Donation: created, ClientSecret: clientSecret}, nil
}

func (u *DonationUseCase) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	return d, nil
}

// ApplyProviderEvent maps a provider webhook event onto the donation keyed by
// the provider intent id. Terminal states never regress: a completed or
// failed donation ignores further events.
func (u *DonationUseCase) ApplyProviderEvent(ctx context.Context, providerIntentID string, status entities.DonationStatus) (entities.Donation, error) {
	providerIntentID = strings.TrimSpace(providerIntentID)
	if providerIntentID == "" {
		return entities.Donation{}, ErrInvalidProviderIntentID
	}
	if !status.Terminal() {
		return entities.Donation{}, ErrInvalidStatusTransition
	}

	d, err := u.repo.GetByProviderIntentID(ctx, providerIntentID)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	if d.Status.Terminal() {
		log.Printf("[donation][usecase] provider event on terminal donation donation_id=%s status=%s event=%s", d.ID, d.Status, status)
		return d, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, d.ID, status)
	if err != nil {
		log.Printf("[donation][usecase] status update failed donation_id=%s err=%v", d.ID, err)
		return entities.Donation{}, err
	}
	log.Printf("[donation][usecase] provider event applied donation_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid_request_error") || strings.Contains(msg, "status: 400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication_error") || strings.Contains(msg, "status: 401")
}
