package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/campuseats/canteen/internal/core/domain"
	"github.com/campuseats/canteen/internal/port"
)

var (
	ErrWrongScreen    = errors.New("operation not valid on current screen")
	ErrNoItemSelected = errors.New("no menu item selected")
	ErrItemNotFound   = errors.New("menu item not found")
	ErrUnknownSlot    = errors.New("unknown pickup slot")
	ErrBadPayment     = errors.New("unknown payment method")
)

// DefaultServiceFee is the flat fee added on top of the subtotal.
const DefaultServiceFee = 10

// OrderWizard drives one student ordering session through the screens
// menu -> customize -> schedule -> payment -> tracking -> rewards.
// It owns the progress tracker of the current order and cancels it
// whenever a new order starts, so at most one ticker runs per session.
type OrderWizard struct {
	mu      sync.Mutex
	catalog port.CatalogRepository
	tokens  *TokenAllocator
	fee     float64

	tick       time.Duration
	readyDelay time.Duration

	screen  domain.Screen
	draft   domain.OrderDraft
	tracker *ProgressTracker
	token   string
}

func NewOrderWizard(catalog port.CatalogRepository, tokens *TokenAllocator, fee float64) *OrderWizard {
	return &OrderWizard{
		catalog:    catalog,
		tokens:     tokens,
		fee:        fee,
		tick:       defaultTickInterval,
		readyDelay: defaultReadyDelay,
		screen:     domain.ScreenMenu,
		draft:      domain.NewOrderDraft(),
	}
}

// SetProgressTiming overrides the simulated kitchen cadence. Useful for
// demos and tests; the defaults match the product's 1.5s tick.
func (w *OrderWizard) SetProgressTiming(tick, readyDelay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tick = tick
	w.readyDelay = readyDelay
}

func (w *OrderWizard) Screen() domain.Screen {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen
}

func (w *OrderWizard) Draft() domain.OrderDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *OrderWizard) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := w.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// SelectItem picks a menu item and moves to the customize screen.
// Quantity resets to 1 on every selection.
func (w *OrderWizard) SelectItem(ctx context.Context, itemID string) error {
	w.mu.Lock()
	if w.screen != domain.ScreenMenu {
		w.mu.Unlock()
		return ErrWrongScreen
	}
	w.mu.Unlock()

	item, err := w.catalog.Find(ctx, itemID)
	if err != nil {
		return fmt.Errorf("find menu item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.screen != domain.ScreenMenu {
		return ErrWrongScreen
	}
	w.draft.Item = item
	w.draft.Quantity = 1
	w.screen = domain.ScreenCustomize
	return nil
}

// IncrementQuantity has no upper bound.
func (w *OrderWizard) IncrementQuantity() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Quantity++
	return w.draft.Quantity
}

// DecrementQuantity floors at 1.
func (w *OrderWizard) DecrementQuantity() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Quantity > 1 {
		w.draft.Quantity--
	}
	return w.draft.Quantity
}

func (w *OrderWizard) ConfirmCustomization() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.screen != domain.ScreenCustomize {
		return ErrWrongScreen
	}
	if w.draft.Item == nil {
		return ErrNoItemSelected
	}
	w.screen = domain.ScreenSchedule
	return nil
}

func (w *OrderWizard) SetPickupTime(slot string) error {
	if !domain.ValidPickupSlot(slot) {
		return ErrUnknownSlot
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.PickupTime = slot
	return nil
}

func (w *OrderWizard) ConfirmSchedule() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.screen != domain.ScreenSchedule {
		return ErrWrongScreen
	}
	w.screen = domain.ScreenPayment
	return nil
}

func (w *OrderWizard) SetPaymentMethod(m domain.PaymentMethod) error {
	if !m.Valid() {
		return ErrBadPayment
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Payment = m
	return nil
}

// PlaceOrder allocates today's pickup token, starts the kitchen
// progress simulation and moves to the tracking screen. Any tracker
// still running from a prior order is cancelled first, so two tickers
// never drive the same session.
func (w *OrderWizard) PlaceOrder(ctx context.Context) (string, error) {
	w.mu.Lock()
	if w.screen != domain.ScreenPayment {
		w.mu.Unlock()
		return "", ErrWrongScreen
	}
	tick, readyDelay := w.tick, w.readyDelay
	w.mu.Unlock()

	token, err := w.tokens.NextToken(ctx)
	if err != nil {
		return "", fmt.Errorf("allocate token: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// The screen can move while the lock is released for token
	// allocation; never commit an order from a non-payment state.
	if w.screen != domain.ScreenPayment {
		return "", ErrWrongScreen
	}
	if w.tracker != nil {
		w.tracker.Stop()
	}
	w.tracker = NewProgressTracker(tick, readyDelay)
	w.tracker.Start()
	w.token = token
	w.screen = domain.ScreenTracking
	return token, nil
}

func (w *OrderWizard) ViewRewards() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.screen != domain.ScreenTracking {
		return ErrWrongScreen
	}
	w.screen = domain.ScreenRewards
	return nil
}

// Back walks one screen towards the menu without touching the draft;
// state set on earlier screens survives a backward-then-forward
// traversal. Invoked on the menu screen it leaves the flow instead,
// discarding the session, and reports that exit.
func (w *OrderWizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev, ok := w.screen.Prev()
	if !ok {
		w.resetLocked()
		return true
	}
	w.screen = prev
	return false
}

// NewOrder restarts the flow at the menu with a fresh draft.
func (w *OrderWizard) NewOrder() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *OrderWizard) resetLocked() {
	if w.tracker != nil {
		w.tracker.Stop()
		w.tracker = nil
	}
	w.draft = domain.NewOrderDraft()
	w.token = ""
	w.screen = domain.ScreenMenu
}

func (w *OrderWizard) Subtotal() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Subtotal()
}

func (w *OrderWizard) Total() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Total(w.fee)
}

func (w *OrderWizard) Token() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.token
}

// TrackerDone exposes the current tracker's completion channel, or nil
// when no order is in flight.
func (w *OrderWizard) TrackerDone() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.tracker == nil {
		return nil
	}
	return w.tracker.Done()
}

type CheckpointStatus struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type TrackingStatus struct {
	Token       string             `json:"token"`
	PickupTime  string             `json:"pickup_time"`
	Progress    int                `json:"progress"`
	Ready       bool               `json:"ready"`
	Checkpoints []CheckpointStatus `json:"checkpoints"`
}

// Tracking reports the live progress of the order in flight. Before
// any order is placed progress is zero and nothing is completed.
func (w *OrderWizard) Tracking() TrackingStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	var progress int
	var ready bool
	if w.tracker != nil {
		progress = w.tracker.Progress()
		ready = w.tracker.Ready()
	}

	st := TrackingStatus{
		Token:      w.token,
		PickupTime: w.draft.PickupTime,
		Progress:   progress,
		Ready:      ready,
	}
	for _, c := range domain.Checkpoints {
		st.Checkpoints = append(st.Checkpoints, CheckpointStatus{
			Name:      c.Name,
			Completed: c.Reached(progress),
		})
	}
	return st
}

type TierStatus struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Available bool   `json:"available"`
}

type RewardsSummary struct {
	Points int          `json:"points"`
	Tiers  []TierStatus `json:"tiers"`
}

func (w *OrderWizard) Rewards() RewardsSummary {
	sum := RewardsSummary{Points: domain.RewardPointsBalance}
	for _, t := range domain.SeedRewardTiers() {
		sum.Tiers = append(sum.Tiers, TierStatus{
			Name:      t.Name,
			Points:    t.Points,
			Available: t.Available(sum.Points),
		})
	}
	return sum
}
