package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func (h *Handler) RegisterRoutes(r *mux.Router, uploadsDir string) {
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories/list", h.listCategories).Methods("GET")
	r.HandleFunc("/api/menu/{id:[0-9]+}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
	r.HandleFunc("/api/reservation", h.submitReservation).Methods("POST")

	r.HandleFunc("/api/orders", h.Authenticate(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.Authenticate(h.listMyOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.Authenticate(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/cancel", h.Authenticate(h.cancelOrder)).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.Authenticate(h.getOrderQRCode)).Methods("GET")

	r.HandleFunc("/api/user/profile", h.Authenticate(h.getProfile)).Methods("GET")
	r.HandleFunc("/api/user/profile", h.Authenticate(h.updateProfile)).Methods("PUT")
	r.HandleFunc("/api/user/verify-password", h.Authenticate(h.verifyPassword)).Methods("POST")

	r.HandleFunc("/api/admin/check", h.Authenticate(h.adminCheck)).Methods("GET")
	r.HandleFunc("/api/admin/stats", h.RequireAdmin(h.adminStats)).Methods("GET")

	r.HandleFunc("/api/admin/users", h.RequireAdmin(h.adminListUsers)).Methods("GET")
	r.HandleFunc("/api/admin/users", h.RequireAdmin(h.adminCreateUser)).Methods("POST")
	r.HandleFunc("/api/admin/users/{id:[0-9]+}", h.RequireAdmin(h.adminGetUser)).Methods("GET")
	r.HandleFunc("/api/admin/users/{id:[0-9]+}", h.RequireAdmin(h.adminUpdateUser)).Methods("PUT")
	r.HandleFunc("/api/admin/users/{id:[0-9]+}", h.RequireAdmin(h.adminDeleteUser)).Methods("DELETE")

	r.HandleFunc("/api/admin/menus", h.RequireAdmin(h.adminListMenus)).Methods("GET")
	r.HandleFunc("/api/admin/menus", h.RequireAdmin(h.adminCreateMenu)).Methods("POST")
	r.HandleFunc("/api/admin/menus/{id:[0-9]+}", h.RequireAdmin(h.adminGetMenu)).Methods("GET")
	r.HandleFunc("/api/admin/menus/{id:[0-9]+}", h.RequireAdmin(h.adminUpdateMenu)).Methods("PUT")
	r.HandleFunc("/api/admin/menus/{id:[0-9]+}", h.RequireAdmin(h.adminDeleteMenu)).Methods("DELETE")

	r.HandleFunc("/api/admin/orders", h.RequireAdmin(h.adminListOrders)).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id:[0-9]+}", h.RequireAdmin(h.adminGetOrder)).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id:[0-9]+}", h.RequireAdmin(h.adminUpdateOrder)).Methods("PUT")
	r.HandleFunc("/api/admin/orders/{id:[0-9]+}", h.RequireAdmin(h.adminDeleteOrder)).Methods("DELETE")

	r.HandleFunc("/api/admin/images/upload", h.RequireAdmin(h.adminUploadImage)).Methods("POST")
	r.HandleFunc("/api/admin/images/list", h.RequireAdmin(h.adminListImages)).Methods("GET")
	r.HandleFunc("/api/admin/images/{filename}", h.RequireAdmin(h.adminDeleteImage)).Methods("DELETE")

	r.HandleFunc("/api/admin/export/users/pdf", h.RequireAdmin(h.exportUsers)).Methods("GET")
	r.HandleFunc("/api/admin/export/menus/pdf", h.RequireAdmin(h.exportMenus)).Methods("GET")
	r.HandleFunc("/api/admin/export/orders/pdf", h.RequireAdmin(h.exportOrders)).Methods("GET")

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
}

func NewRouter(handler *Handler, uploadsDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r, uploadsDir)
	return cors.AllowAll().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
