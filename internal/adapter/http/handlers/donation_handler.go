package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	request "hopebridge/internal/adapter/http/dto/request"
	response "hopebridge/internal/adapter/http/dto/response"
	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase"
	"hopebridge/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

var errInvalidDonationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// DonationHandler handles HTTP requests for the donation flow: intent
// creation, status polling and provider webhooks.

type DonationHandler struct {
	usecase       usecase.IDonationUseCase
	webhookSecret string
}

func NewDonationHandler(uc usecase.IDonationUseCase, webhookSecret string) *DonationHandler {
	return &DonationHandler{usecase: uc, webhookSecret: webhookSecret}
}

// CreateIntent opens a payment intent for a donation draft.
//
// @Summary      Create a donation payment intent
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        donation  body      request.DonationCreateRequest  true  "donation draft"
// @Success      200       {object}  response.IntentCreatedResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /api/stripe/create-intent [post]
func (h *DonationHandler) CreateIntent(c *gin.Context) {
	var payload request.DonationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[donation][handler] invalid payload err=%v", err)
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateIntent(c.Request.Context(), usecase.CreateDonationInput{
		Amount:     payload.Amount,
		DonorName:  payload.DonorName,
		DonorEmail: payload.DonorEmail,
		Purpose:    payload.ResolvePurpose(),
		SectionID:  payload.SectionID,
		ObjectID:   payload.ObjectID,
	})
	if err != nil {
		log.Printf("[donation][handler] create-intent failed err=%v", err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] create-intent success donation_id=%s", created.Donation.ID)

	c.JSON(http.StatusOK, response.FromCreatedIntent(created.Donation, created.ClientSecret))
}

// GetDonationByID is the status poll target for a created intent.
//
// @Summary      Get a donation by id
// @Tags         donations
// @Produce      json
// @Param        donation_id  path      string  true  "donation id"
// @Success      200          {object}  response.DonationStatusResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /api/donations/by-id/{donation_id} [get]
func (h *DonationHandler) GetDonationByID(c *gin.Context) {
	donationID := c.Param("donation_id")

	d, err := h.usecase.GetByID(c.Request.Context(), donationID)
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonation(d))
}

// HandleProviderWebhook applies Stripe payment_intent events to donations.
// This is the authoritative source of the pending -> completed/failed
// transition that the donor-side poller observes.
//
// @Summary      Stripe webhook endpoint
// @Tags         donations
// @Accept       json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/stripe/webhook [post]
func (h *DonationHandler) HandleProviderWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	event, err := webhook.ConstructEvent(raw, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		log.Printf("[donation][webhook] signature verification failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, ok := statusForEventType(string(event.Type))
	if !ok {
		// Unhandled event types are acknowledged so Stripe stops retrying.
		log.Printf("[donation][webhook] ignoring event type=%s", event.Type)
		c.JSON(http.StatusOK, gin.H{"received": "true"})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Printf("[donation][webhook] event payload unmarshal failed err=%v", err)
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ApplyProviderEvent(c.Request.Context(), intent.ID, status)
	if err != nil {
		log.Printf("[donation][webhook] apply failed intent_id=%s err=%v", intent.ID, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][webhook] applied event type=%s donation_id=%s status=%s", event.Type, updated.ID, updated.Status)

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}

func statusForEventType(eventType string) (entities.DonationStatus, bool) {
	switch eventType {
	case "payment_intent.succeeded":
		return entities.DonationStatusCompleted, true
	case "payment_intent.payment_failed", "payment_intent.canceled":
		return entities.DonationStatusFailed, true
	}
	return "", false
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonationAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Donation amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDonationID), errors.Is(err, usecase.ErrInvalidProviderIntentID), errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
