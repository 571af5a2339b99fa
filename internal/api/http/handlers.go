package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
	"github.com/N4th0wl/HangTuah-Website/internal/service"
)

type Handler struct {
	Accounts service.AccountServiceInterface
	Menu     service.MenuServiceInterface
	Orders   service.OrderServiceInterface
	Reports  service.ReportServiceInterface
	Contact  service.ContactServiceInterface
	Images   service.ImageStore
	Tokens   *service.TokenManager
}

func NewHandler(
	accounts service.AccountServiceInterface,
	menu service.MenuServiceInterface,
	orders service.OrderServiceInterface,
	reports service.ReportServiceInterface,
	contact service.ContactServiceInterface,
	images service.ImageStore,
	tokens *service.TokenManager,
) *Handler {
	return &Handler{
		Accounts: accounts,
		Menu:     menu,
		Orders:   orders,
		Reports:  reports,
		Contact:  contact,
		Images:   images,
		Tokens:   tokens,
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ---- auth ----

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Accounts.Register(body.Username, body.Email, body.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	token, user, err := h.Accounts.Login(body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"data": map[string]any{
			"token": token,
			"user":  user,
		},
	})
}

// ---- public menu ----

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": item})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Categories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": categories})
}

// ---- orders ----

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input domain.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	order, err := h.Orders.Place(r.Context(), claimsFrom(r).UserID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"data":    order,
	})
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListMine(claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id, claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": order})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Cancel(r.Context(), id, claimsFrom(r).UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled successfully"})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.PaymentQRCode(id, claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

// ---- user profile ----

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.Profile(claimsFrom(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User profile fetched successfully",
		"data":    user,
	})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Accounts.UpdateProfile(claimsFrom(r).UserID, body.Username, body.Email, body.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"data": map[string]string{
			"username": body.Username,
			"email":    body.Email,
		},
	})
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Accounts.VerifyPassword(claimsFrom(r).UserID, body.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password verified successfully"})
}

// ---- contact & reservations ----

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Contact.SubmitContact(r.Context(), msg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Contact form submitted successfully. We will get back to you soon!",
	})
}

func (h *Handler) submitReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Contact.SubmitReservation(r.Context(), res); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reservation confirmed! A confirmation email has been sent to you.",
	})
}
