package donorflow

// PurposeOption is a single selectable donation purpose. Options derived
// from site content carry back-references to the section and content object
// they came from; static organizational purposes carry none.
type PurposeOption struct {
	Label     string `json:"label"`
	SectionID string `json:"sectionId,omitempty"`
	ObjectID  string `json:"objectId,omitempty"`
}

// DonationDraft holds the donor's in-progress form state. It is consumed
// once at submission and superseded by a PaymentIntentRef.
type DonationDraft struct {
	Amount     float64
	DonorName  string
	DonorEmail string
	Anonymous  bool
	Purpose    PurposeOption
}

// PaymentIntentRef identifies a server-created payment intent. At most one
// is live per donation attempt; it owns the lifetime of the status poller
// and the payment confirmation step.
type PaymentIntentRef struct {
	ClientSecret string `json:"clientSecret"`
	DonationID   string `json:"donationId"`
}

// DonationStatus is the backend-authoritative settlement state of a donation.
type DonationStatus string

const (
	StatusPending   DonationStatus = "pending"
	StatusCompleted DonationStatus = "completed"
	StatusFailed    DonationStatus = "failed"
)

// Terminal reports whether the status ends the polling session.
func (s DonationStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// DonationSnapshot is the polled view of a donation.
type DonationSnapshot struct {
	ID     string         `json:"id"`
	Status DonationStatus `json:"status"`
	Amount float64        `json:"amount"`
}

// Phase is the explicit state of a donation attempt. Transitions are owned
// exclusively by Flow; no combination outside these variants is reachable.
type Phase int

const (
	// PhaseEditing is the initial and recovery state: the draft is editable
	// and no intent exists.
	PhaseEditing Phase = iota
	// PhaseCreatingIntent covers the in-flight intent creation request.
	// Resubmission is disabled in this phase.
	PhaseCreatingIntent
	// PhaseAwaitingPayment means an intent exists, the confirmer may run,
	// and the status poller is live.
	PhaseAwaitingPayment
	// PhaseSucceeded is terminal: the backend reported the donation completed.
	PhaseSucceeded
	// PhaseFailed means the backend reported failure or polling gave up.
	// The intent is discarded and the draft is editable again.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseCreatingIntent:
		return "creating_intent"
	case PhaseAwaitingPayment:
		return "awaiting_payment"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
