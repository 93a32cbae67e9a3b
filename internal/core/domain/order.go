package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

// Next returns the single legal forward transition. There is no
// transition out of completed.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusCompleted, true
	default:
		return s, false
	}
}

// Order is the admin-facing record shown on the order board.
type Order struct {
	ID       string
	Customer string
	Items    string
	Total    float64
	Status   OrderStatus
	Time     string
}

type PaymentMethod string

const (
	PaymentCampusWallet PaymentMethod = "campus_wallet"
	PaymentUPI          PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCampusWallet || m == PaymentUPI
}

// PickupSlots is the fixed set of schedulable pickup times.
var PickupSlots = []string{
	"11:30 AM", "12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM",
}

const DefaultPickupSlot = "12:30 PM"

func ValidPickupSlot(slot string) bool {
	for _, s := range PickupSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// OrderDraft is the wizard's working state, mutated screen by screen.
type OrderDraft struct {
	Item       *MenuItem
	Quantity   int
	PickupTime string
	Payment    PaymentMethod
}

func NewOrderDraft() OrderDraft {
	return OrderDraft{
		Quantity:   1,
		PickupTime: DefaultPickupSlot,
		Payment:    PaymentCampusWallet,
	}
}

// Subtotal and Total are recomputed on every read, never cached.
func (d OrderDraft) Subtotal() float64 {
	if d.Item == nil {
		return 0
	}
	return d.Item.Price * float64(d.Quantity)
}

func (d OrderDraft) Total(serviceFee float64) float64 {
	return d.Subtotal() + serviceFee
}

type Screen string

const (
	ScreenMenu      Screen = "menu"
	ScreenCustomize Screen = "customize"
	ScreenSchedule  Screen = "schedule"
	ScreenPayment   Screen = "payment"
	ScreenTracking  Screen = "tracking"
	ScreenRewards   Screen = "rewards"
)

var screenOrder = []Screen{
	ScreenMenu, ScreenCustomize, ScreenSchedule,
	ScreenPayment, ScreenTracking, ScreenRewards,
}

func (s Screen) index() int {
	for i, sc := range screenOrder {
		if sc == s {
			return i
		}
	}
	return -1
}

func (s Screen) Next() (Screen, bool) {
	i := s.index()
	if i < 0 || i == len(screenOrder)-1 {
		return s, false
	}
	return screenOrder[i+1], true
}

// Prev is the strict inverse of the forward chain; false from the
// first screen, where backing out means leaving the flow entirely.
func (s Screen) Prev() (Screen, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return screenOrder[i-1], true
}

func SeedOrders() []Order {
	return []Order{
		{ID: "#AB123", Customer: "Sarah M.", Items: "Paneer Butter Masala Bowl", Total: 190, Status: OrderStatusPreparing, Time: "12:35"},
		{ID: "#AB124", Customer: "John D.", Items: "Aloo Tikki Burger Combo", Total: 170, Status: OrderStatusPending, Time: "12:37"},
		{ID: "#AB125", Customer: "Emma R.", Items: "Veggie Buddha Bowl", Total: 150, Status: OrderStatusReady, Time: "12:30"},
		{ID: "#AB126", Customer: "Mike T.", Items: "Dal Makhani Thali", Total: 210, Status: OrderStatusCompleted, Time: "12:25"},
		{ID: "#AB127", Customer: "Lisa K.", Items: "Chole Bhature (Special Offer)", Total: 110, Status: OrderStatusPending, Time: "12:40"},
	}
}
