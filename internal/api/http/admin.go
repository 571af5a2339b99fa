package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

const maxUploadSize = 5 << 20 // 5 MB

func (h *Handler) adminCheck(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims.Role != domain.RoleAdmin {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"isAdmin": false,
			"error":   "Not an admin",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"isAdmin": true,
		"user": map[string]any{
			"id":       claims.UserID,
			"username": claims.Username,
			"email":    claims.Email,
			"role":     claims.Role,
		},
	})
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	stats, activities, err := h.Reports.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"stats":      stats,
			"activities": activities,
		},
	})
}

// ---- user management ----

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Accounts.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": users})
}

func (h *Handler) adminGetUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	user, err := h.Accounts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": user})
}

func (h *Handler) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Accounts.Create(body.Username, body.Email, body.Password, body.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func (h *Handler) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Accounts.Update(id, body.Username, body.Email, body.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Accounts.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// ---- menu management ----

// menuItemFromForm reads the multipart fields shared by create and update.
func (h *Handler) menuItemFromForm(r *http.Request) (*domain.MenuItem, string, bool, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", false, domain.ErrInvalidInput
	}

	price, err := strconv.ParseInt(r.FormValue("price"), 10, 64)
	if err != nil {
		price = -1 // fails validation downstream
	}
	item := &domain.MenuItem{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Price:       price,
	}

	var filename string
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		filename, err = h.Images.Save(header.Filename, file)
		if err != nil {
			return nil, "", false, err
		}
	}

	removeImage := r.FormValue("removeImage") == "true"
	return item, filename, removeImage, nil
}

func (h *Handler) adminListMenus(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context(), "", "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) adminGetMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": item})
}

func (h *Handler) adminCreateMenu(w http.ResponseWriter, r *http.Request) {
	item, filename, _, err := h.menuItemFromForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item.ImageFilename = filename

	if err := h.Menu.Create(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Menu item created successfully",
		"data":    item,
	})
}

func (h *Handler) adminUpdateMenu(w http.ResponseWriter, r *http.Request) {
	item, filename, removeImage, err := h.menuItemFromForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item.ID, _ = strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Menu.Update(r.Context(), item, filename, removeImage); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

func (h *Handler) adminDeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	result, err := h.Menu.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Menu item deleted successfully",
		"data":    result,
	})
}

// ---- order management ----

func (h *Handler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.AdminList()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": orders})
}

func (h *Handler) adminGetOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.AdminGet(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": order})
}

func (h *Handler) adminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if body.Status == "" {
		writeJSONError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.Orders.SetStatus(r.Context(), id, body.Status, body.Notes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order updated successfully"})
}

func (h *Handler) adminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// ---- image management ----

func (h *Handler) adminUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	filename, err := h.Images.Save(header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}

func (h *Handler) adminListImages(w http.ResponseWriter, r *http.Request) {
	filenames, err := h.Images.List()
	if err != nil {
		writeError(w, err)
		return
	}

	images := make([]map[string]string, 0, len(filenames))
	for _, filename := range filenames {
		images = append(images, map[string]string{
			"filename": filename,
			"path":     "/uploads/" + filename,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": images})
}

func (h *Handler) adminDeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.Images.Delete(mux.Vars(r)["filename"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

// ---- exports ----

func (h *Handler) exportUsers(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.UsersReport()
	if err != nil {
		writeError(w, err)
		return
	}
	writeReport(w, "users-report.html", report)
}

func (h *Handler) exportMenus(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.MenusReport()
	if err != nil {
		writeError(w, err)
		return
	}
	writeReport(w, "menus-report.html", report)
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.OrdersReport(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeReport(w, "orders-report.html", report)
}

func writeReport(w http.ResponseWriter, filename string, report []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(report)
}
