// Package checkout implements the simulated payment confirmation flow.
// It is a small one-directional state machine, review -> processing ->
// confirmed, entered explicitly by the user once a booking has been staged.
// Payment latency is simulated with a fixed delay; there is no real payment
// gateway behind it.
package checkout

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// Step is a state of the checkout flow.
type Step string

const (
	StepReview     Step = "review"
	StepProcessing Step = "processing"
	StepConfirmed  Step = "confirmed"
)

// TaxRate is the flat estimated taxes-and-fees percentage applied to the
// subtotal. Illustrative, not load-bearing.
const TaxRate = 0.12

// DefaultProcessingDelay models payment gateway latency.
const DefaultProcessingDelay = 2 * time.Second

// State is a read-only snapshot of the flow for rendering.
type State struct {
	Step         Step                    `json:"step"`
	Items        []domain.PendingBooking `json:"items"`
	Subtotal     float64                 `json:"subtotal"`
	Tax          float64                 `json:"tax"`
	GrandTotal   float64                 `json:"grandTotal"`
	Confirmation string                  `json:"confirmation,omitempty"`
}

// Totals computes subtotal, tax (rounded to the nearest currency unit), and
// grand total for a set of checkout items.
func Totals(items []domain.PendingBooking) (subtotal, tax, grand float64) {
	for _, item := range items {
		subtotal += item.Price
	}
	tax = math.Round(subtotal * TaxRate)
	return subtotal, tax, subtotal + tax
}

// Committer commits the captured items into the store once payment confirms.
type Committer interface {
	ConfirmBookings(items []domain.PendingBooking) []domain.Booking
	CancelPendingBooking()
	PendingBooking() (domain.PendingBooking, bool)
}

// Manager owns at most one checkout flow at a time and drives its
// transitions. All methods are safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	store Committer
	delay time.Duration

	step         Step
	open         bool
	items        []domain.PendingBooking
	confirmation string
}

// NewManager constructs a Manager committing into store, with the given
// simulated processing delay.
func NewManager(store Committer, delay time.Duration) *Manager {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Manager{store: store, delay: delay}
}

// Open starts a checkout flow over the currently staged booking.
// It fails with ErrNoPendingBooking when nothing is staged, and with
// ErrCheckoutState when a flow is already in progress.
func (m *Manager) Open() (State, error) {
	pending, ok := m.store.PendingBooking()
	if !ok {
		return State{}, domain.ErrNoPendingBooking
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open && m.step != StepConfirmed {
		return State{}, domain.ErrCheckoutState
	}

	m.open = true
	m.step = StepReview
	m.items = []domain.PendingBooking{pending}
	m.confirmation = ""
	return m.stateLocked(), nil
}

// Pay moves the flow from review to processing and schedules the confirmed
// transition after the simulated delay. Once processing starts there is no
// way back and no cancellation path.
func (m *Manager) Pay() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open || m.step != StepReview {
		return State{}, domain.ErrCheckoutState
	}

	m.step = StepProcessing
	time.AfterFunc(m.delay, m.confirm)
	return m.stateLocked(), nil
}

// confirm is the scheduled processing -> confirmed transition. It commits
// the captured items into the store and records a confirmation code.
func (m *Manager) confirm() {
	m.mu.Lock()
	if !m.open || m.step != StepProcessing {
		m.mu.Unlock()
		return
	}
	m.step = StepConfirmed
	m.confirmation = confirmationCode()
	items := m.items
	m.mu.Unlock()

	// Commit outside the manager lock; the store has its own.
	m.store.ConfirmBookings(items)
}

// Cancel discards the flow and the staged booking. Only permitted from
// review; no Booking record is created.
func (m *Manager) Cancel() error {
	m.mu.Lock()
	if !m.open || m.step != StepReview {
		m.mu.Unlock()
		return domain.ErrCheckoutState
	}
	m.open = false
	m.items = nil
	m.mu.Unlock()

	m.store.CancelPendingBooking()
	return nil
}

// Close dismisses a confirmed flow so a new checkout can be opened later.
// It is a no-op in any other state: review flows are dismissed with Cancel,
// and a processing flow cannot be abandoned.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open && m.step == StepConfirmed {
		m.open = false
		m.items = nil
		m.confirmation = ""
	}
}

// Status returns the current flow snapshot, or ErrNotFound when no flow
// is open.
func (m *Manager) Status() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return State{}, domain.ErrNotFound
	}
	return m.stateLocked(), nil
}

func (m *Manager) stateLocked() State {
	items := make([]domain.PendingBooking, len(m.items))
	copy(items, m.items)
	subtotal, tax, grand := Totals(items)
	return State{
		Step:         m.step,
		Items:        items,
		Subtotal:     subtotal,
		Tax:          tax,
		GrandTotal:   grand,
		Confirmation: m.confirmation,
	}
}

// confirmationCode produces a short human-readable booking reference.
func confirmationCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return id[:8]
}
