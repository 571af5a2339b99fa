package service

import (
	"context"
	"io"
	"time"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

// OrderLedger is the component of record for orders and their items, and the
// only writer of order totals.
type OrderLedger interface {
	PlaceOrder(order *domain.Order) error
	CancelOrder(orderID, userID int) error
	UpdateOrderStatus(orderID int, status, notes string) error
	DeleteOrder(orderID int) error
	DeleteMenuItemCascade(menuItemID int) (domain.CascadeResult, string, error)
	ListOrdersByUser(userID int) ([]domain.Order, error)
	GetOrderForUser(orderID, userID int) (*domain.Order, error)
	AdminListOrders() ([]domain.Order, error)
	AdminGetOrder(orderID int) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type MenuRepository interface {
	ListMenuItems(category, search string) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	ListCategories() ([]string, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUser(id int) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(id int, username, email, role string) error
	UpdateProfile(id int, username, email, passwordHash string) error
	DeleteUser(id int) error
}

type StatsRepository interface {
	CountUsers() (int, error)
	CountOrders() (int, error)
	CountMenuItems() (int, error)
	RecentUsers(limit int) ([]domain.User, error)
	RecentOrders(limit int) ([]domain.Order, error)
	RecentMenuItems(limit int) ([]domain.MenuItem, error)
	ListOrdersBetween(start, end time.Time) ([]domain.Order, error)
	ListUsers() ([]domain.User, error)
	ListMenuItems(category, search string) ([]domain.MenuItem, error)
}

type MenuCache interface {
	MenuListKey(category, search string) string
	GetMenuList(ctx context.Context, key string) ([]domain.MenuItem, bool)
	SetMenuList(ctx context.Context, key string, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type Notifier interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
	PublishContactMessage(ctx context.Context, msg domain.ContactMessage) error
	PublishReservation(ctx context.Context, res domain.Reservation) error
}

type ImageStore interface {
	Save(originalName string, src io.Reader) (string, error)
	List() ([]string, error)
	Delete(filename string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, userID int, input domain.PlaceOrderInput) (*domain.Order, error)
	ListMine(userID int) ([]domain.Order, error)
	Get(orderID, userID int) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, userID int) error
	AdminList() ([]domain.Order, error)
	AdminGet(orderID int) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID int, status, notes string) error
	Delete(orderID int) error
	PaymentQRCode(orderID, userID int) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, category, search string) ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Categories() ([]domain.MenuCategory, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem, newImage string, removeImage bool) error
	Delete(ctx context.Context, id int) (domain.CascadeResult, error)
}

type AccountServiceInterface interface {
	Register(username, email, password string) error
	Login(email, password string) (string, *domain.User, error)
	Profile(userID int) (*domain.User, error)
	UpdateProfile(userID int, username, email, newPassword string) error
	VerifyPassword(userID int, password string) error
	List() ([]domain.User, error)
	Get(id int) (*domain.User, error)
	Create(username, email, password, role string) error
	Update(id int, username, email, role string) error
	Delete(id int) error
}

type ReportServiceInterface interface {
	Stats() (domain.Stats, domain.Activities, error)
	UsersReport() ([]byte, error)
	MenusReport() ([]byte, error)
	OrdersReport(startDate, endDate string) ([]byte, error)
}
