// Package mocks provides testify mocks for the repository and collaborator
// interfaces declared in internal/service.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

type OrderLedger struct {
	mock.Mock
}

func (m *OrderLedger) PlaceOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderLedger) CancelOrder(orderID, userID int) error {
	return m.Called(orderID, userID).Error(0)
}

func (m *OrderLedger) UpdateOrderStatus(orderID int, status, notes string) error {
	return m.Called(orderID, status, notes).Error(0)
}

func (m *OrderLedger) DeleteOrder(orderID int) error {
	return m.Called(orderID).Error(0)
}

func (m *OrderLedger) DeleteMenuItemCascade(menuItemID int) (domain.CascadeResult, string, error) {
	args := m.Called(menuItemID)
	return args.Get(0).(domain.CascadeResult), args.String(1), args.Error(2)
}

func (m *OrderLedger) ListOrdersByUser(userID int) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderLedger) GetOrderForUser(orderID, userID int) (*domain.Order, error) {
	args := m.Called(orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderLedger) AdminListOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderLedger) AdminGetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderLedger) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderLedger) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func (m *MenuRepository) ListMenuItems(category, search string) ([]domain.MenuItem, error) {
	args := m.Called(category, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) ListCategories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetUser(id int) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) UpdateUser(id int, username, email, role string) error {
	return m.Called(id, username, email, role).Error(0)
}

func (m *UserRepository) UpdateProfile(id int, username, email, passwordHash string) error {
	return m.Called(id, username, email, passwordHash).Error(0)
}

func (m *UserRepository) DeleteUser(id int) error {
	return m.Called(id).Error(0)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) CountUsers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountOrders() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountMenuItems() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) RecentUsers(limit int) ([]domain.User, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *StatsRepository) RecentOrders(limit int) ([]domain.Order, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *StatsRepository) RecentMenuItems(limit int) ([]domain.MenuItem, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *StatsRepository) ListOrdersBetween(start, end time.Time) ([]domain.Order, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *StatsRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *StatsRepository) ListMenuItems(category, search string) ([]domain.MenuItem, error) {
	args := m.Called(category, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

type MenuCache struct {
	mock.Mock
}

func (m *MenuCache) MenuListKey(category, search string) string {
	return m.Called(category, search).String(0)
}

func (m *MenuCache) GetMenuList(ctx context.Context, key string) ([]domain.MenuItem, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Bool(1)
}

func (m *MenuCache) SetMenuList(ctx context.Context, key string, items []domain.MenuItem) error {
	return m.Called(ctx, key, items).Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *Notifier) PublishContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *Notifier) PublishReservation(ctx context.Context, res domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

type ImageStore struct {
	mock.Mock
}

func (m *ImageStore) Save(originalName string, src io.Reader) (string, error) {
	args := m.Called(originalName, src)
	return args.String(0), args.Error(1)
}

func (m *ImageStore) List() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ImageStore) Delete(filename string) error {
	return m.Called(filename).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int, amount int64) ([]byte, error) {
	args := m.Called(orderID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
