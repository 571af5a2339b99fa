package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	MinTableNumber = 1
	MaxTableNumber = 25
)

// Prices are stored in the smallest currency unit (whole rupiah).
type MenuItem struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	ImageFilename string    `json:"image_filename,omitempty"`
	ImageURL      string    `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID            int         `json:"id"`
	UserID        int         `json:"user_id"`
	Username      string      `json:"username,omitempty"`
	TotalPrice    int64       `json:"total_price"`
	TableNumber   int         `json:"table_number"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	Notes         string      `json:"notes"`
	QRCode        string      `json:"qr_code,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

// OrderItem carries the unit price snapshotted at placement time. It is
// never re-read from the catalog, so later menu edits leave it untouched.
type OrderItem struct {
	ID          int    `json:"id"`
	OrderID     int    `json:"order_id"`
	MenuItemID  int    `json:"menu_item_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

func (i OrderItem) LineTotal() int64 {
	return int64(i.Quantity) * i.Price
}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderLine is one requested line of a new order. The client never supplies
// the authoritative price; it is resolved from the catalog at placement.
type OrderLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type PlaceOrderInput struct {
	TableNumber   int         `json:"table_number"`
	Lines         []OrderLine `json:"items"`
	Notes         string      `json:"notes"`
	PaymentMethod string      `json:"payment_method"`
}

type CascadeResult struct {
	RemovedOrderLines int `json:"removedOrderItems"`
	AffectedOrders    int `json:"affectedOrders"`
}

type Stats struct {
	TotalUsers  int `json:"totalUsers"`
	TotalOrders int `json:"totalOrders"`
	TotalMenus  int `json:"totalMenus"`
}

type Activities struct {
	Users  []User     `json:"users"`
	Orders []Order    `json:"orders"`
	Menus  []MenuItem `json:"menus"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Reservation struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   int    `json:"guests"`
	Occasion string `json:"occasion"`
	Requests string `json:"requests"`
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	UserID    int       `json:"user_id"`
	Status    string    `json:"status"`
	Total     int64     `json:"total_price"`
	Timestamp time.Time `json:"timestamp"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
