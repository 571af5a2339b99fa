package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

// The ledger is the only writer of orders.total_price and order_items rows.
// Placement and the menu-deletion cascade both lock the menu rows they read
// (FOR SHARE vs FOR UPDATE), so a delete in flight can never interleave with
// a placement snapshotting the same item.

// PlaceOrder resolves the current catalog price for every line inside the
// transaction, snapshots it into the item rows, and computes the order total
// server-side. Either the order and all its items are persisted, or nothing is.
func (r *PostgresRepository) PlaceOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, int64(item.MenuItemID))
	}

	rows, err := tx.Query(
		"SELECT id, price FROM menu_items WHERE id = ANY($1) FOR SHARE",
		pq.Array(ids))
	if err != nil {
		return err
	}
	prices := map[int]int64{}
	for rows.Next() {
		var id int
		var price int64
		if err := rows.Scan(&id, &price); err != nil {
			rows.Close()
			return err
		}
		prices[id] = price
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	var total int64
	for i := range order.Items {
		price, ok := prices[order.Items[i].MenuItemID]
		if !ok {
			return fmt.Errorf("menu item %d: %w", order.Items[i].MenuItemID, domain.ErrNotFound)
		}
		order.Items[i].Price = price
		total += order.Items[i].LineTotal()
	}
	order.TotalPrice = total
	order.Status = domain.StatusPending

	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, total_price, table_number, status, payment_method, payment_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id, created_at
	`, order.UserID, order.TotalPrice, order.TableNumber, order.Status,
		order.PaymentMethod, order.PaymentStatus, order.Notes,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, order.ID, item.MenuItemID, item.Quantity, item.Price).Scan(&item.ID); err != nil {
			return err
		}
		item.OrderID = order.ID
	}

	return tx.Commit()
}

// DeleteMenuItemCascade removes a menu item together with every order item
// referencing it, decrementing each affected order's total by exactly the
// removed amount. The whole cleanup is one transaction; totals never go
// below zero.
func (r *PostgresRepository) DeleteMenuItemCascade(menuItemID int) (domain.CascadeResult, string, error) {
	var result domain.CascadeResult

	tx, err := r.DB.Begin()
	if err != nil {
		return result, "", err
	}
	defer tx.Rollback()

	var imageFilename string
	err = tx.QueryRow(
		"SELECT COALESCE(image_filename, '') FROM menu_items WHERE id = $1 FOR UPDATE",
		menuItemID).Scan(&imageFilename)
	if errors.Is(err, sql.ErrNoRows) {
		return result, "", domain.ErrNotFound
	}
	if err != nil {
		return result, "", err
	}

	// One grouped decrement instead of a write per line. The UPDATE takes
	// row locks on every affected order, serializing concurrent cascades
	// that touch the same orders.
	adjust, err := tx.Exec(`
		UPDATE orders o
		SET total_price = GREATEST(o.total_price - adj.amount, 0)
		FROM (
			SELECT order_id, SUM(quantity * price) AS amount
			FROM order_items
			WHERE menu_item_id = $1
			GROUP BY order_id
		) adj
		WHERE o.id = adj.order_id
	`, menuItemID)
	if err != nil {
		return result, "", err
	}
	affected, err := adjust.RowsAffected()
	if err != nil {
		return result, "", err
	}

	removed, err := tx.Exec("DELETE FROM order_items WHERE menu_item_id = $1", menuItemID)
	if err != nil {
		return result, "", err
	}
	removedLines, err := removed.RowsAffected()
	if err != nil {
		return result, "", err
	}

	if _, err := tx.Exec("DELETE FROM menu_items WHERE id = $1", menuItemID); err != nil {
		return result, "", err
	}

	if err := tx.Commit(); err != nil {
		return result, "", err
	}

	result.RemovedOrderLines = int(removedLines)
	result.AffectedOrders = int(affected)
	return result, imageFilename, nil
}

// CancelOrder is the owner-initiated transition; only pending orders cancel.
func (r *PostgresRepository) CancelOrder(orderID, userID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRow(
		"SELECT status FROM orders WHERE id = $1 AND user_id = $2 FOR UPDATE",
		orderID, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.StatusPending {
		return fmt.Errorf("order is %s: %w", status, domain.ErrInvalidState)
	}

	if _, err := tx.Exec(
		"UPDATE orders SET status = $1 WHERE id = $2",
		domain.StatusCancelled, orderID); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateOrderStatus is the administrative override; it never touches items
// or totals. Absent orders report ErrNotFound.
func (r *PostgresRepository) UpdateOrderStatus(orderID int, status, notes string) error {
	result, err := r.DB.Exec(
		"UPDATE orders SET status = $1, notes = $2 WHERE id = $3",
		status, notes, orderID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteOrder(orderID int) error {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const orderColumns = "id, user_id, total_price, table_number, status, payment_method, payment_status, COALESCE(notes, ''), created_at"

func scanOrder(row interface{ Scan(...any) error }, order *domain.Order) error {
	return row.Scan(&order.ID, &order.UserID, &order.TotalPrice, &order.TableNumber,
		&order.Status, &order.PaymentMethod, &order.PaymentStatus, &order.Notes, &order.CreatedAt)
}

func (r *PostgresRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrderForUser(orderID, userID int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 AND user_id = $2",
		orderID, userID), &order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = r.listOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Items are joined to menu display fields; a LEFT JOIN keeps lines whose
// menu item was deleted before the application cascade existed.
func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, COALESCE(m.name, ''), COALESCE(m.description, ''), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Description, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) AdminListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.user_id, u.username, o.total_price, o.table_number, o.status,
		       o.payment_method, o.payment_status, COALESCE(o.notes, ''), o.created_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Username, &order.TotalPrice,
			&order.TableNumber, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
			&order.Notes, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) AdminGetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT o.id, o.user_id, u.username, o.total_price, o.table_number, o.status,
		       o.payment_method, o.payment_status, COALESCE(o.notes, ''), o.created_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.UserID, &order.Username, &order.TotalPrice,
		&order.TableNumber, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
		&order.Notes, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = r.listOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) CountOrders() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *PostgresRepository) RecentOrders(limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.user_id, u.username, o.total_price, o.status, o.created_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Username,
			&order.TotalPrice, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// ListOrdersBetween feeds the orders export; zero times mean no bound.
func (r *PostgresRepository) ListOrdersBetween(start, end time.Time) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.user_id, u.username, o.total_price, o.status, o.created_at
		FROM orders o
		JOIN users u ON o.user_id = u.id`
	args := []any{}
	if !start.IsZero() && !end.IsZero() {
		query += " WHERE o.created_at >= $1 AND o.created_at <= $2"
		args = append(args, start, end)
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Username,
			&order.TotalPrice, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
