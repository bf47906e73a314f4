package donorflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var (
	// ErrInvalidAmount rejects a draft before any network call is made.
	ErrInvalidAmount = errors.New("donation amount must be a positive number")
	// ErrSubmissionInFlight guards against a second intent creation while
	// one is still pending.
	ErrSubmissionInFlight = errors.New("an intent creation request is already in flight")
	// ErrStatusUnresolved means polling gave up before the backend reported
	// a terminal status.
	ErrStatusUnresolved = errors.New("donation status did not resolve in time")
	// ErrNotAwaitingPayment means confirmation was attempted without a live
	// intent.
	ErrNotAwaitingPayment = errors.New("no payment is awaiting confirmation")
)

// anonymousDonorName substitutes the donor's name when the anonymity flag
// is set; the email is dropped entirely.
const anonymousDonorName = "Anonymous"

const (
	defaultPollInterval    = 3 * time.Second
	defaultMaxPollAttempts = 100
)

// FlowConfig configures a donation flow.
type FlowConfig struct {
	// PollInterval is the fixed delay between status polls. Defaults to 3s.
	PollInterval time.Duration
	// MaxPollAttempts bounds the polling session so a stuck intent cannot
	// poll forever. Defaults to 100.
	MaxPollAttempts int
	// ReturnURL is handed to the payment confirmer as the no-redirect
	// return target.
	ReturnURL string
}

// Flow drives a single donation attempt through its phases: Editing →
// CreatingIntent → AwaitingPayment → Succeeded or Failed. All state is
// owned by the Flow and guarded by one mutex; the poller goroutine is the
// only background writer and always holds the same lock.
type Flow struct {
	client    SiteClient
	confirmer PaymentConfirmer
	cfg       FlowConfig

	mu             sync.Mutex
	phase          Phase
	draft          DonationDraft
	intent         *PaymentIntentRef
	lastErr        error
	settledAmount  float64
	localSucceeded bool

	cancelPoll context.CancelFunc
	pollDone   chan struct{}
	settled    chan struct{}
}

// NewFlow returns a flow in the editing phase.
func NewFlow(client SiteClient, confirmer PaymentConfirmer, cfg FlowConfig) *Flow {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = defaultMaxPollAttempts
	}

	return &Flow{
		client:    client,
		confirmer: confirmer,
		cfg:       cfg,
		phase:     PhaseEditing,
	}
}

// Phase returns the current phase.
func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Draft returns the current draft. It remains intact across failures so the
// donor can re-edit and resubmit.
func (f *Flow) Draft() DonationDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft. Ignored outside an editable phase.
func (f *Flow) SetDraft(draft DonationDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase == PhaseEditing || f.phase == PhaseFailed {
		f.draft = draft
	}
}

// Intent returns the live intent reference, if any.
func (f *Flow) Intent() *PaymentIntentRef {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.intent == nil {
		return nil
	}
	ref := *f.intent
	return &ref
}

// Err returns the most recent user-facing error, if any.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// SettledAmount returns the donation amount once the flow has succeeded.
func (f *Flow) SettledAmount() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settledAmount
}

// ConfirmedLocally reports whether the payment confirmer observed success.
// This signal is independent of, and may precede, the poller's terminal
// status; both observe the same underlying payment.
func (f *Flow) ConfirmedLocally() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.localSucceeded
}

// Settled returns a channel closed when the current attempt reaches a
// terminal phase. Nil before any submission.
func (f *Flow) Settled() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settled
}

// Submit validates the draft and requests a payment intent. An amount of
// zero or less is rejected before any network call. While a request is in
// flight, further submissions are rejected; once an intent exists, a new
// submission supersedes it, cancelling the prior poller before anything
// else starts.
func (f *Flow) Submit(ctx context.Context, draft DonationDraft) (PaymentIntentRef, error) {
	f.mu.Lock()
	if f.phase == PhaseCreatingIntent {
		f.mu.Unlock()
		return PaymentIntentRef{}, ErrSubmissionInFlight
	}

	f.draft = draft

	if draft.Amount <= 0 {
		f.lastErr = ErrInvalidAmount
		f.mu.Unlock()
		return PaymentIntentRef{}, ErrInvalidAmount
	}

	f.stopPollerLocked()
	f.releaseSettledWaitersLocked()
	f.intent = nil
	f.localSucceeded = false
	f.lastErr = nil
	f.phase = PhaseCreatingIntent
	f.mu.Unlock()

	ref, err := f.client.CreateIntent(ctx, intentRequestFromDraft(draft))

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.phase = PhaseEditing
		f.lastErr = fmt.Errorf("could not start the donation: %w", err)
		return PaymentIntentRef{}, f.lastErr
	}

	f.intent = &ref
	f.phase = PhaseAwaitingPayment
	f.settled = make(chan struct{})
	f.startPollerLocked(ref.DonationID, draft.Amount)

	return ref, nil
}

// intentRequestFromDraft resolves anonymity and flattens the purpose
// references into the wire body.
func intentRequestFromDraft(draft DonationDraft) IntentRequest {
	name := draft.DonorName
	email := draft.DonorEmail
	if draft.Anonymous {
		name = anonymousDonorName
		email = ""
	}

	req := IntentRequest{
		Amount:     draft.Amount,
		DonorName:  name,
		DonorEmail: email,
		Purpose:    draft.Purpose.Label,
	}
	if draft.Purpose.SectionID != "" {
		req.SectionID = &draft.Purpose.SectionID
	}
	if draft.Purpose.ObjectID != "" {
		req.ObjectID = &draft.Purpose.ObjectID
	}

	return req
}

// ConfirmPayment hands the client secret to the payment confirmer with the
// configured no-redirect return target. A provider error surfaces on the
// flow without a phase transition; a locally observed "succeeded" is
// recorded but the authoritative transition still belongs to the poller.
func (f *Flow) ConfirmPayment(ctx context.Context) error {
	f.mu.Lock()
	if f.phase != PhaseAwaitingPayment || f.intent == nil {
		f.mu.Unlock()
		return ErrNotAwaitingPayment
	}
	secret := f.intent.ClientSecret
	f.mu.Unlock()

	result, err := f.confirmer.Confirm(ctx, secret, f.cfg.ReturnURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.lastErr = fmt.Errorf("payment confirmation failed: %w", err)
		return f.lastErr
	}

	if result.Succeeded {
		f.localSucceeded = true
	}

	return nil
}

// Abort backs out of the payment step: the poller stops, the intent is
// discarded, and the draft returns to the editing phase untouched.
func (f *Flow) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopPollerLocked()
	f.releaseSettledWaitersLocked()
	f.intent = nil
	f.phase = PhaseEditing
}

// releaseSettledWaitersLocked unblocks anyone waiting on a superseded or
// aborted attempt. Callers must hold f.mu with the poller already stopped.
func (f *Flow) releaseSettledWaitersLocked() {
	if f.settled == nil {
		return
	}
	select {
	case <-f.settled:
	default:
		close(f.settled)
	}
	f.settled = nil
}

// Close tears the flow down, stopping any live poller. The flow must not be
// reused afterwards.
func (f *Flow) Close() {
	f.Abort()
}

// startPollerLocked launches the status poller for a freshly created intent.
// Callers must hold f.mu and must have stopped any prior poller first.
func (f *Flow) startPollerLocked(donationID string, amount float64) {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancelPoll = cancel
	f.pollDone = make(chan struct{})

	go f.poll(ctx, donationID, amount, f.pollDone, f.settled)
}

// stopPollerLocked cancels the live poller, if any, and waits for it to
// exit so a superseding attempt can never race an old one. Callers must
// hold f.mu.
func (f *Flow) stopPollerLocked(done ...chan struct{}) {
	if f.cancelPoll == nil {
		return
	}

	f.cancelPoll()
	f.cancelPoll = nil

	pollDone := f.pollDone
	f.pollDone = nil

	// The poller takes the lock to publish transitions; release it while
	// waiting so the poller can observe cancellation and exit.
	f.mu.Unlock()
	<-pollDone
	f.mu.Lock()
}

// poll queries the donation status at a fixed interval until a terminal
// status, cancellation, or the attempt ceiling.
func (f *Flow) poll(ctx context.Context, donationID string, amount float64, done chan<- struct{}, settled chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(f.cfg.PollInterval)
	defer ticker.Stop()

	for attempts := 0; attempts < f.cfg.MaxPollAttempts; attempts++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snapshot, err := f.client.DonationByID(ctx, donationID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[poller][donorflow] status check for donation %s failed, will retry: %v", donationID, err)
			continue
		}

		switch snapshot.Status {
		case StatusCompleted:
			f.settle(ctx, settled, func() {
				f.phase = PhaseSucceeded
				f.settledAmount = amount
			})
			return
		case StatusFailed:
			f.settle(ctx, settled, func() {
				f.phase = PhaseFailed
				f.intent = nil
				f.lastErr = errors.New("the payment did not go through; please try again")
			})
			return
		}
	}

	f.settle(ctx, settled, func() {
		f.phase = PhaseFailed
		f.intent = nil
		f.lastErr = ErrStatusUnresolved
	})
}

// settle publishes a terminal transition unless this poller was superseded
// or cancelled while the status request was in flight.
func (f *Flow) settle(ctx context.Context, settled chan struct{}, transition func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ctx.Err() != nil || f.settled != settled {
		return
	}

	transition()
	close(settled)
}
