package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

const (
	PaymentMethodQRIS = "qris"
	PaymentStatusPaid = "paid"
)

type OrderService struct {
	ledger    OrderLedger
	qrEncoder QRGenerator
	notifier  Notifier
}

func NewOrderService(ledger OrderLedger, qr QRGenerator, notifier Notifier) *OrderService {
	return &OrderService{ledger: ledger, qrEncoder: qr, notifier: notifier}
}

// Place validates the request before touching storage, then creates the
// order and all its items atomically. Unit prices are snapshotted from the
// catalog inside the transaction; the client-supplied price is never trusted.
func (s *OrderService) Place(ctx context.Context, userID int, input domain.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", domain.ErrInvalidInput)
	}
	if input.TableNumber < domain.MinTableNumber || input.TableNumber > domain.MaxTableNumber {
		return nil, fmt.Errorf("table number must be %d-%d: %w",
			domain.MinTableNumber, domain.MaxTableNumber, domain.ErrInvalidInput)
	}
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidInput)
		}
		if line.MenuItemID <= 0 {
			return nil, fmt.Errorf("invalid menu item id: %w", domain.ErrInvalidInput)
		}
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = PaymentMethodQRIS
	}

	order := &domain.Order{
		UserID:        userID,
		TableNumber:   input.TableNumber,
		Notes:         input.Notes,
		PaymentMethod: paymentMethod,
		// Simulated instant QRIS settlement.
		PaymentStatus: PaymentStatusPaid,
	}
	for _, line := range input.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	if err := s.ledger.PlaceOrder(order); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID, order.TotalPrice); err == nil {
			if err := s.ledger.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("[orders] failed to store payment QR for order %d: %v", order.ID, err)
			}
		} else {
			log.Printf("[orders] failed to generate payment QR for order %d: %v", order.ID, err)
		}
	}
	order.QRCode = fmt.Sprintf("/api/orders/%d/qrcode", order.ID)

	s.publish(ctx, "order_placed", order.ID, order.UserID, order.Status, order.TotalPrice)
	return order, nil
}

func (s *OrderService) ListMine(userID int) ([]domain.Order, error) {
	return s.ledger.ListOrdersByUser(userID)
}

func (s *OrderService) Get(orderID, userID int) (*domain.Order, error) {
	return s.ledger.GetOrderForUser(orderID, userID)
}

func (s *OrderService) Cancel(ctx context.Context, orderID, userID int) error {
	if err := s.ledger.CancelOrder(orderID, userID); err != nil {
		return err
	}
	s.publish(ctx, "order_cancelled", orderID, userID, domain.StatusCancelled, 0)
	return nil
}

func (s *OrderService) AdminList() ([]domain.Order, error) {
	return s.ledger.AdminListOrders()
}

func (s *OrderService) AdminGet(orderID int) (*domain.Order, error) {
	return s.ledger.AdminGetOrder(orderID)
}

// SetStatus is the administrative override; any of the three statuses may be
// set and only status/notes metadata changes.
func (s *OrderService) SetStatus(ctx context.Context, orderID int, status, notes string) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}
	if err := s.ledger.UpdateOrderStatus(orderID, status, notes); err != nil {
		return err
	}
	s.publish(ctx, "order_status_changed", orderID, 0, status, 0)
	return nil
}

func (s *OrderService) Delete(orderID int) error {
	return s.ledger.DeleteOrder(orderID)
}

// PaymentQRCode returns the stored payment QR, regenerating it if an older
// order predates QR storage.
func (s *OrderService) PaymentQRCode(orderID, userID int) ([]byte, error) {
	order, err := s.ledger.GetOrderForUser(orderID, userID)
	if err != nil {
		return nil, err
	}

	qr, err := s.ledger.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(order.ID, order.TotalPrice)
		if err != nil {
			return nil, err
		}
		if err := s.ledger.SaveQRCode(orderID, regenerated); err != nil {
			log.Printf("[orders] failed to cache regenerated QR for order %d: %v", orderID, err)
		}
		return regenerated, nil
	}
	return qr, nil
}

// Event publishing is best-effort; a broker outage never fails the request.
func (s *OrderService) publish(ctx context.Context, eventType string, orderID, userID int, status string, total int64) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      eventType,
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Total:     total,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("[orders] failed to publish %s event for order %d: %v", eventType, orderID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
