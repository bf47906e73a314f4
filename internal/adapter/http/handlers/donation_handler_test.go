package handlers

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hopebridge/internal/adapter/http/handlers/mocks"
	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/mock/gomock"
)

func TestDonationHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, "")

		r := gin.New()
		r.POST("/api/stripe/create-intent", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-intent", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, "")

		r := gin.New()
		r.POST("/api/stripe/create-intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(usecase.CreatedIntent{}, usecase.ErrInvalidDonationAmount)

		req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-intent", bytes.NewBufferString(`{"amount":0,"purpose":"General Donation"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["error"] == "" {
			t.Fatalf("expected error field in body, got %s", w.Body.String())
		}
	})

	t.Run("success returns clientSecret and donationId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, "")

		r := gin.New()
		r.POST("/api/stripe/create-intent", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateDonationInput) (usecase.CreatedIntent, error) {
				if in.Amount != 25 || in.DonorName != "Jane Doe" || in.DonorEmail != "" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Purpose != "General Donation" || in.SectionID != "" || in.ObjectID != "" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.CreatedIntent{
					Donation:     entities.Donation{ID: "don-1", Status: entities.DonationStatusPending},
					ClientSecret: "pi_1_secret_x",
				}, nil
			})

		body := `{"amount":25,"donorName":"Jane Doe","donorEmail":"","purpose":"General Donation","sectionId":null,"objectId":null}`
		req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-intent", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["clientSecret"] != "pi_1_secret_x" || resp["donationId"] != "don-1" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_GetDonationByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, "")

		r := gin.New()
		r.GET("/api/donations/by-id/:donation_id", h.GetDonationByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Donation{}, usecase.ErrDonationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/donations/by-id/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success wraps donation envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, "")

		r := gin.New()
		r.GET("/api/donations/by-id/:donation_id", h.GetDonationByID)

		uc.EXPECT().GetByID(gomock.Any(), "don-1").Return(entities.Donation{ID: "don-1", Amount: 25, Status: entities.DonationStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/donations/by-id/don-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Donation struct {
				Status string  `json:"status"`
				Amount float64 `json:"amount"`
			} `json:"donation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Donation.Status != "completed" || resp.Donation.Amount != 25 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func signedWebhookRequest(t *testing.T, payload []byte, secret string) *http.Request {
	t.Helper()

	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", header)
	return req
}

func TestDonationHandler_HandleProviderWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "whsec_test"

	t.Run("bad signature rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, secret)

		r := gin.New()
		r.POST("/api/stripe/webhook", h.HandleProviderWebhook)

		req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("succeeded event completes donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, secret)

		r := gin.New()
		r.POST("/api/stripe/webhook", h.HandleProviderWebhook)

		uc.EXPECT().ApplyProviderEvent(gomock.Any(), "pi_1", entities.DonationStatusCompleted).Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusCompleted}, nil)

		payload := []byte(`{"id":"evt_1","api_version":"2022-11-15","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedWebhookRequest(t, payload, secret))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("failed event fails donation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, secret)

		r := gin.New()
		r.POST("/api/stripe/webhook", h.HandleProviderWebhook)

		uc.EXPECT().ApplyProviderEvent(gomock.Any(), "pi_1", entities.DonationStatusFailed).Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusFailed}, nil)

		payload := []byte(`{"id":"evt_2","api_version":"2022-11-15","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_1"}}}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedWebhookRequest(t, payload, secret))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unhandled event acknowledged without usecase call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc, secret)

		r := gin.New()
		r.POST("/api/stripe/webhook", h.HandleProviderWebhook)

		payload := []byte(`{"id":"evt_3","api_version":"2022-11-15","type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedWebhookRequest(t, payload, secret))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
