package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/campuseats/canteen/internal/core/domain"
	"github.com/campuseats/canteen/internal/core/service"
)

// HTTPHandler is the JSON facade over the student wizard and the admin
// board. State updates are polled, never pushed.
type HTTPHandler struct {
	wizard *service.OrderWizard
	board  *service.AdminBoard
}

func NewHTTPHandler(wizard *service.OrderWizard, board *service.AdminBoard) *HTTPHandler {
	return &HTTPHandler{wizard: wizard, board: board}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/menu", h.Menu)
	mux.HandleFunc("/api/busy-hours", h.BusyHours)
	mux.HandleFunc("/api/wizard/state", h.WizardState)
	mux.HandleFunc("/api/wizard/select", h.SelectItem)
	mux.HandleFunc("/api/wizard/quantity", h.Quantity)
	mux.HandleFunc("/api/wizard/customize/confirm", h.ConfirmCustomization)
	mux.HandleFunc("/api/wizard/schedule/confirm", h.ConfirmSchedule)
	mux.HandleFunc("/api/wizard/payment/place", h.PlaceOrder)
	mux.HandleFunc("/api/wizard/rewards", h.Rewards)
	mux.HandleFunc("/api/wizard/tracking", h.Tracking)
	mux.HandleFunc("/api/wizard/back", h.Back)
	mux.HandleFunc("/api/wizard/new-order", h.NewOrder)
	mux.HandleFunc("/api/admin/orders", h.Orders)
	mux.HandleFunc("/api/admin/orders/advance", h.AdvanceOrder)
	mux.HandleFunc("/api/admin/overview", h.Overview)
	mux.HandleFunc("/api/admin/menu", h.AdminMenu)
}

type menuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Glyph       string  `json:"glyph"`
	Special     bool    `json:"special,omitempty"`
}

func (h *HTTPHandler) Menu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	items, err := h.wizard.Menu(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	out := make([]menuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemResponse{
			ID: it.ID, Name: it.Name, Price: it.Price, Rating: it.Rating,
			Description: it.Description, Category: it.Category,
			Glyph: it.Glyph, Special: it.Special,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) BusyHours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	type busyHourResponse struct {
		Hour       string `json:"hour"`
		Orders     int    `json:"orders"`
		Percentage int    `json:"percentage"`
		Status     string `json:"status"`
	}
	var out []busyHourResponse
	for _, b := range domain.SeedBusyHours() {
		out = append(out, busyHourResponse{b.Hour, b.Orders, b.Percentage, b.Status})
	}
	writeJSON(w, http.StatusOK, out)
}

type wizardStateResponse struct {
	Screen     string  `json:"screen"`
	ItemID     string  `json:"item_id,omitempty"`
	ItemName   string  `json:"item_name,omitempty"`
	Quantity   int     `json:"quantity"`
	PickupTime string  `json:"pickup_time"`
	Payment    string  `json:"payment"`
	Subtotal   float64 `json:"subtotal"`
	Total      float64 `json:"total"`
	Token      string  `json:"token,omitempty"`
}

func (h *HTTPHandler) WizardState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardState())
}

func (h *HTTPHandler) wizardState() wizardStateResponse {
	draft := h.wizard.Draft()
	resp := wizardStateResponse{
		Screen:     string(h.wizard.Screen()),
		Quantity:   draft.Quantity,
		PickupTime: draft.PickupTime,
		Payment:    string(draft.Payment),
		Subtotal:   h.wizard.Subtotal(),
		Total:      h.wizard.Total(),
		Token:      h.wizard.Token(),
	}
	if draft.Item != nil {
		resp.ItemID = draft.Item.ID
		resp.ItemName = draft.Item.Name
	}
	return resp
}

func (h *HTTPHandler) SelectItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "item_id required"})
		return
	}
	if err := h.wizard.SelectItem(r.Context(), req.ItemID); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardState())
}

func (h *HTTPHandler) Quantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Op string `json:"op"` // increment | decrement
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	var quantity int
	switch req.Op {
	case "increment":
		quantity = h.wizard.IncrementQuantity()
	case "decrement":
		quantity = h.wizard.DecrementQuantity()
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "op must be increment or decrement"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"quantity": quantity})
}

func (h *HTTPHandler) ConfirmCustomization(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.wizard.ConfirmCustomization(); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardState())
}

func (h *HTTPHandler) ConfirmSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		PickupTime string `json:"pickup_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.PickupTime != "" {
		if err := h.wizard.SetPickupTime(req.PickupTime); err != nil {
			writeWizardError(w, err)
			return
		}
	}
	if err := h.wizard.ConfirmSchedule(); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardState())
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Payment string `json:"payment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Payment != "" {
		if err := h.wizard.SetPaymentMethod(domain.PaymentMethod(req.Payment)); err != nil {
			writeWizardError(w, err)
			return
		}
	}
	token, err := h.wizard.PlaceOrder(r.Context())
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"total": h.wizard.Total(),
	})
}

func (h *HTTPHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.wizard.Tracking())
}

func (h *HTTPHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.wizard.Rewards())
	case http.MethodPost:
		if err := h.wizard.ViewRewards(); err != nil {
			writeWizardError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h.wizard.Rewards())
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) Back(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	exited := h.wizard.Back()
	writeJSON(w, http.StatusOK, map[string]any{
		"exited": exited,
		"screen": string(h.wizard.Screen()),
	})
}

func (h *HTTPHandler) NewOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.wizard.NewOrder()
	writeJSON(w, http.StatusOK, h.wizardState())
}

func (h *HTTPHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var orders []domain.Order
	if status := r.URL.Query().Get("status"); status != "" {
		orders = h.board.OrdersByStatus(domain.OrderStatus(status))
	} else {
		orders = h.board.Orders()
	}
	type orderResponse struct {
		ID       string  `json:"id"`
		Customer string  `json:"customer"`
		Items    string  `json:"items"`
		Total    float64 `json:"total"`
		Status   string  `json:"status"`
		Time     string  `json:"time"`
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{o.ID, o.Customer, o.Items, o.Total, string(o.Status), o.Time})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": out,
		"active": h.board.ActiveCount(),
	})
}

func (h *HTTPHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order_id required"})
		return
	}
	status, err := h.board.Advance(req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "order not found"})
			return
		}
		if errors.Is(err, service.ErrOrderCompleted) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "order already completed"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"order_id": req.OrderID,
		"status":   string(status),
	})
}

func (h *HTTPHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.board.Overview())
}

func (h *HTTPHandler) AdminMenu(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listAdminMenu(w)
	case http.MethodPost:
		h.addAdminMenu(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type catalogEntryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	LowStock bool    `json:"low_stock"`
}

func (h *HTTPHandler) listAdminMenu(w http.ResponseWriter) {
	entries := h.board.MenuEntries()
	out := make([]catalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, catalogEntryResponse{e.ID, e.Name, e.Category, e.Price, e.Stock, e.LowStock()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) addAdminMenu(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	entry, err := h.board.AddMenuEntry(req.Name, req.Category, req.Price)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, catalogEntryResponse{
		entry.ID, entry.Name, entry.Category, entry.Price, entry.Stock, entry.LowStock(),
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "menu item not found"})
	case errors.Is(err, service.ErrWrongScreen):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "operation not valid on current screen"})
	case errors.Is(err, service.ErrNoItemSelected),
		errors.Is(err, service.ErrUnknownSlot),
		errors.Is(err, service.ErrBadPayment):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
