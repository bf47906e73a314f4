package usecase

import (
	"context"
	"errors"
	"testing"

	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase/interfaces"
	mock_interfaces "hopebridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDonationUseCase_CreateIntent_Validations(t *testing.T) {
	t.Run("zero amount rejected before gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// No EXPECT on the gateway: any call would fail the test.
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		_, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: 0})
		if !errors.Is(err, ErrInvalidDonationAmount) {
			t.Fatalf("expected ErrInvalidDonationAmount, got %v", err)
		}
	})

	t.Run("negative amount rejected before gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		_, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: -5})
		if !errors.Is(err, ErrInvalidDonationAmount) {
			t.Fatalf("expected ErrInvalidDonationAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewDonationUseCase(nil, nil)
		_, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: 10})
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestDonationUseCase_CreateIntent(t *testing.T) {
	t.Run("success persists pending donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.IntentRequest) (string, string, error) {
				if req.Amount != 25 {
					t.Fatalf("expected amount 25, got %v", req.Amount)
				}
				if req.Currency != "usd" {
					t.Fatalf("expected usd, got %v", req.Currency)
				}
				if req.Metadata["purpose"] != "General Donation" {
					t.Fatalf("expected purpose metadata, got %v", req.Metadata)
				}
				return "pi_123", "pi_123_secret_abc", nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Donation) (entities.Donation, error) {
				if d.Status != entities.DonationStatusPending {
					t.Fatalf("expected pending status, got %v", d.Status)
				}
				if d.ProviderIntentID != "pi_123" {
					t.Fatalf("expected provider intent id, got %v", d.ProviderIntentID)
				}
				if d.DonorName != "Jane Doe" {
					t.Fatalf("expected donor name, got %v", d.DonorName)
				}
				return d, nil
			})

		created, err := uc.CreateIntent(context.Background(), CreateDonationInput{
			Amount:    25,
			DonorName: "Jane Doe",
			Purpose:   "General Donation",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ClientSecret != "pi_123_secret_abc" {
			t.Fatalf("expected client secret, got %v", created.ClientSecret)
		}
		if created.Donation.ID == "" {
			t.Fatalf("expected generated donation id")
		}
	})

	t.Run("empty purpose defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return("pi_1", "sec", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Donation) (entities.Donation, error) {
				if d.Purpose != "General Donation" {
					t.Fatalf("expected default purpose, got %q", d.Purpose)
				}
				return d, nil
			})

		if _, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway unauthorized mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return("", "", errors.New(`request failed, status: 401, type: authentication_error`))

		_, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: 10})
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDonationUseCase(repo, gateway)

		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return("pi_1", "sec", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Donation{}, errors.New("db"))

		_, err := uc.CreateIntent(context.Background(), CreateDonationInput{Amount: 10})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDonationUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewDonationUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidDonationID) {
			t.Fatalf("expected ErrInvalidDonationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "don-1").Return(entities.Donation{}, nil)

		_, err := uc.GetByID(context.Background(), "don-1")
		if !errors.Is(err, ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "don-1").Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusPending}, nil)

		d, err := uc.GetByID(context.Background(), "don-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DonationStatusPending {
			t.Fatalf("expected pending, got %v", d.Status)
		}
	})
}

func TestDonationUseCase_ApplyProviderEvent(t *testing.T) {
	t.Run("non-terminal status rejected", func(t *testing.T) {
		uc := NewDonationUseCase(nil, nil)
		_, err := uc.ApplyProviderEvent(context.Background(), "pi_1", entities.DonationStatusPending)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("unknown intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().GetByProviderIntentID(gomock.Any(), "pi_1").Return(entities.Donation{}, nil)

		_, err := uc.ApplyProviderEvent(context.Background(), "pi_1", entities.DonationStatusCompleted)
		if !errors.Is(err, ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("pending transitions to completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().GetByProviderIntentID(gomock.Any(), "pi_1").Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.DonationStatusCompleted).Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusCompleted}, nil)

		d, err := uc.ApplyProviderEvent(context.Background(), "pi_1", entities.DonationStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DonationStatusCompleted {
			t.Fatalf("expected completed, got %v", d.Status)
		}
	})

	t.Run("terminal donation ignores later events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		uc := NewDonationUseCase(repo, nil)

		repo.EXPECT().GetByProviderIntentID(gomock.Any(), "pi_1").Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusCompleted}, nil)

		d, err := uc.ApplyProviderEvent(context.Background(), "pi_1", entities.DonationStatusFailed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DonationStatusCompleted {
			t.Fatalf("expected status to remain completed, got %v", d.Status)
		}
	})
}
