package tests

import (
	"fmt"
	"time"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

// memoryLedger mirrors the transactional semantics of the Postgres ledger in
// memory: atomic placement with price snapshots, the grouped cascade
// decrement with its zero clamp, and the pending-only cancellation guard.
// It backs the end-to-end flow tests without a database.
type memoryLedger struct {
	menu      map[int]*domain.MenuItem
	orders    map[int]*domain.Order
	qrCodes   map[int][]byte
	nextMenu  int
	nextOrder int
	nextItem  int
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{
		menu:    map[int]*domain.MenuItem{},
		orders:  map[int]*domain.Order{},
		qrCodes: map[int][]byte{},
	}
}

func (m *memoryLedger) addMenuItem(id int, name string, price int64) {
	m.menu[id] = &domain.MenuItem{ID: id, Name: name, Category: "food", Price: price}
	if id > m.nextMenu {
		m.nextMenu = id
	}
}

// ---- OrderLedger ----

func (m *memoryLedger) PlaceOrder(order *domain.Order) error {
	var total int64
	for i := range order.Items {
		item, ok := m.menu[order.Items[i].MenuItemID]
		if !ok {
			return fmt.Errorf("menu item %d: %w", order.Items[i].MenuItemID, domain.ErrNotFound)
		}
		order.Items[i].Price = item.Price
		total += order.Items[i].LineTotal()
	}

	m.nextOrder++
	order.ID = m.nextOrder
	order.TotalPrice = total
	order.Status = domain.StatusPending
	order.CreatedAt = time.Now()
	for i := range order.Items {
		m.nextItem++
		order.Items[i].ID = m.nextItem
		order.Items[i].OrderID = order.ID
	}

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	m.orders[order.ID] = &stored
	return nil
}

func (m *memoryLedger) CancelOrder(orderID, userID int) error {
	order, ok := m.orders[orderID]
	if !ok || order.UserID != userID {
		return domain.ErrNotFound
	}
	if order.Status != domain.StatusPending {
		return fmt.Errorf("order is %s: %w", order.Status, domain.ErrInvalidState)
	}
	order.Status = domain.StatusCancelled
	return nil
}

func (m *memoryLedger) UpdateOrderStatus(orderID int, status, notes string) error {
	order, ok := m.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.Status = status
	order.Notes = notes
	return nil
}

func (m *memoryLedger) DeleteOrder(orderID int) error {
	if _, ok := m.orders[orderID]; !ok {
		return domain.ErrNotFound
	}
	delete(m.orders, orderID)
	return nil
}

func (m *memoryLedger) DeleteMenuItemCascade(menuItemID int) (domain.CascadeResult, string, error) {
	var result domain.CascadeResult

	item, ok := m.menu[menuItemID]
	if !ok {
		return result, "", domain.ErrNotFound
	}

	for _, order := range m.orders {
		var removed int64
		kept := order.Items[:0]
		for _, line := range order.Items {
			if line.MenuItemID == menuItemID {
				removed += line.LineTotal()
				result.RemovedOrderLines++
				continue
			}
			kept = append(kept, line)
		}
		if removed > 0 {
			order.Items = kept
			order.TotalPrice -= removed
			if order.TotalPrice < 0 {
				order.TotalPrice = 0
			}
			result.AffectedOrders++
		}
	}

	delete(m.menu, menuItemID)
	return result, item.ImageFilename, nil
}

func (m *memoryLedger) ListOrdersByUser(userID int) ([]domain.Order, error) {
	orders := []domain.Order{}
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, copyOrder(order))
		}
	}
	return orders, nil
}

func (m *memoryLedger) GetOrderForUser(orderID, userID int) (*domain.Order, error) {
	order, ok := m.orders[orderID]
	if !ok || order.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := copyOrder(order)
	return &copied, nil
}

func (m *memoryLedger) AdminListOrders() ([]domain.Order, error) {
	orders := []domain.Order{}
	for _, order := range m.orders {
		orders = append(orders, copyOrder(order))
	}
	return orders, nil
}

func (m *memoryLedger) AdminGetOrder(orderID int) (*domain.Order, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := copyOrder(order)
	return &copied, nil
}

func (m *memoryLedger) SaveQRCode(orderID int, qr []byte) error {
	m.qrCodes[orderID] = qr
	return nil
}

func (m *memoryLedger) GetQRCode(orderID int) ([]byte, error) {
	if _, ok := m.orders[orderID]; !ok {
		return nil, domain.ErrNotFound
	}
	return m.qrCodes[orderID], nil
}

// ---- MenuRepository ----

func (m *memoryLedger) ListMenuItems(category, search string) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	for _, item := range m.menu {
		items = append(items, *item)
	}
	return items, nil
}

func (m *memoryLedger) GetMenuItem(id int) (*domain.MenuItem, error) {
	item, ok := m.menu[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *memoryLedger) ListCategories() ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, item := range m.menu {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

func (m *memoryLedger) CreateMenuItem(item *domain.MenuItem) error {
	m.nextMenu++
	item.ID = m.nextMenu
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	copied := *item
	m.menu[item.ID] = &copied
	return nil
}

func (m *memoryLedger) UpdateMenuItem(item *domain.MenuItem) error {
	if _, ok := m.menu[item.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *item
	copied.UpdatedAt = time.Now()
	m.menu[item.ID] = &copied
	return nil
}

func copyOrder(order *domain.Order) domain.Order {
	copied := *order
	copied.Items = append([]domain.OrderItem(nil), order.Items...)
	return copied
}
