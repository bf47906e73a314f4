package donorflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v5"
)

// ContentItem is the minimal shape every listed content object exposes.
type ContentItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SectionContent carries the collection arrays a public section may hold.
// Each section type populates exactly one of these keys.
type SectionContent struct {
	Programs       []ContentItem `json:"programs"`
	SuccessStories []ContentItem `json:"successStories"`
	News           []ContentItem `json:"news"`
}

// Section is a public content section as served by the site API.
type Section struct {
	ID      string         `json:"id"`
	Slug    string         `json:"slug"`
	Content SectionContent `json:"content"`
}

// IntentRequest is the body posted to the intent-creation endpoint. The
// reference fields marshal to explicit nulls when absent.
type IntentRequest struct {
	Amount     float64 `json:"amount"`
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Purpose    string  `json:"purpose"`
	SectionID  *string `json:"sectionId"`
	ObjectID   *string `json:"objectId"`
}

// SiteClient is the site API surface the donation flow depends on.
type SiteClient interface {
	FetchSection(ctx context.Context, slug string) (Section, error)
	CreateIntent(ctx context.Context, req IntentRequest) (PaymentIntentRef, error)
	DonationByID(ctx context.Context, donationID string) (DonationSnapshot, error)
}

// ClientConfig configures a site API client. The auth token is injected at
// construction; nothing is read from ambient state at call sites.
type ClientConfig struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

type siteClient struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewSiteClient returns a SiteClient for the given base URL.
func NewSiteClient(cfg ClientConfig) (SiteClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("missing site API base URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &siteClient{
		baseURL:   cfg.BaseURL,
		authToken: cfg.AuthToken,
		client:    httpClient,
	}, nil
}

type retryable interface {
	CanRetry() bool
}

type retryableError struct {
	Err      error
	canRetry bool
}

func (e retryableError) Error() string {
	return e.Err.Error()
}

func (e retryableError) Unwrap() error {
	return e.Err
}

func (e retryableError) CanRetry() bool {
	return e.canRetry
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"error"`
}

func (c *siteClient) makeRequest(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return retryableError{Err: fmt.Errorf("failed to make request: %w", err), canRetry: true}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && (apiErr.Message != "" || apiErr.Detail != "") {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Detail
			}
			returned := fmt.Errorf("API error: %s - %s", apiErr.Code, msg)
			if resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable {
				return retryableError{Err: returned, canRetry: true}
			}
			return returned
		}

		returned := fmt.Errorf("HTTP error: %d", resp.StatusCode)
		if resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable {
			return retryableError{Err: returned, canRetry: true}
		}
		return returned
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// FetchSection retrieves a public content section. Transport-level failures
// are retried with exponential backoff since the read is idempotent.
func (c *siteClient) FetchSection(ctx context.Context, slug string) (Section, error) {
	endpoint := fmt.Sprintf("/api/public/sections/%s", url.PathEscape(slug))

	var section Section
	err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &section)

	re, ok := err.(retryable)
	if ok && re.CanRetry() {
		operation := func() (Section, error) {
			var retried Section
			if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &retried); err != nil {
				return Section{}, err
			}
			return retried, nil
		}
		section, err = backoff.Retry(ctx, operation, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
	}

	if err != nil {
		return Section{}, err
	}

	return section, nil
}

// CreateIntent posts the donation draft and returns the intent reference.
// It is never retried automatically: resubmission is a user decision.
func (c *siteClient) CreateIntent(ctx context.Context, req IntentRequest) (PaymentIntentRef, error) {
	var ref PaymentIntentRef
	if err := c.makeRequest(ctx, http.MethodPost, "/api/stripe/create-intent", req, &ref); err != nil {
		return PaymentIntentRef{}, err
	}

	if ref.ClientSecret == "" || ref.DonationID == "" {
		return PaymentIntentRef{}, errors.New("intent response missing clientSecret or donationId")
	}

	return ref, nil
}

// DonationByID polls the current status of a donation.
func (c *siteClient) DonationByID(ctx context.Context, donationID string) (DonationSnapshot, error) {
	endpoint := fmt.Sprintf("/api/donations/by-id/%s", url.PathEscape(donationID))

	var envelope struct {
		Donation DonationSnapshot `json:"donation"`
	}
	if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return DonationSnapshot{}, err
	}

	return envelope.Donation, nil
}
