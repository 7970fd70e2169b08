package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/database"
	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// OrderLine is one item name / quantity pair entered while placing an order.
type OrderLine struct {
	ItemName string
	Quantity int
}

// OrderService implements order placement, history, detail and the
// driver/manager-only status update.
type OrderService struct {
	db      *gorm.DB
	gateway *database.Gateway
}

// NewOrderService returns a service bound to an open database handle.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, gateway: database.NewGateway(db)}
}

// StoreAcceptsOrders checks that the store exists and its open flag reads
// "yes", case-insensitively. A missing store is reported the same way as
// a closed one.
func (s *OrderService) StoreAcceptsOrders(storeID int) error {
	var store models.Store
	if err := s.db.Where("store_id = ?", storeID).First(&store).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrStoreClosed
		}
		return err
	}
	if !strings.EqualFold(store.IsOpen, models.StoreOpen) {
		return ErrStoreClosed
	}
	return nil
}

// PlaceOrder inserts a new order for login against an open store. Each
// line's price is fetched individually and the total is accumulated
// client-side; unknown item names are skipped and returned, not fatal.
// The order ID is MAX(order_id)+1 at insertion time, and the header and
// line items are inserted as independent statements with no transaction.
func (s *OrderService) PlaceOrder(login string, storeID int, lines []OrderLine) (*models.FoodOrder, []string, error) {
	if err := s.StoreAcceptsOrders(storeID); err != nil {
		return nil, nil, err
	}

	var accepted []OrderLine
	var skipped []string
	var totalPrice float64
	for _, line := range lines {
		var item models.Item
		if err := s.db.Select("price").Where("item_name = ?", line.ItemName).
			First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				skipped = append(skipped, line.ItemName)
				continue
			}
			return nil, skipped, err
		}
		totalPrice += item.Price * float64(line.Quantity)
		accepted = append(accepted, line)
	}

	if len(accepted) == 0 {
		return nil, skipped, ErrNoItemsSelected
	}

	orderID, err := s.nextOrderID()
	if err != nil {
		return nil, skipped, err
	}

	order := models.FoodOrder{
		OrderID:        orderID,
		Login:          login,
		StoreID:        storeID,
		TotalPrice:     totalPrice,
		OrderTimestamp: time.Now(),
		OrderStatus:    models.StatusIncomplete,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, skipped, err
	}

	for _, line := range accepted {
		item := models.OrderItem{
			OrderID:  orderID,
			ItemName: line.ItemName,
			Quantity: line.Quantity,
		}
		if err := s.db.Create(&item).Error; err != nil {
			// No rollback: a failure here leaves a header with
			// partial line items, exactly as the schema allows.
			return &order, skipped, err
		}
	}
	return &order, skipped, nil
}

// DumpAllOrders writes every order row for a login to w as a raw
// tab-separated dump and returns the row count.
func (s *OrderService) DumpAllOrders(w io.Writer, login string) (int, error) {
	return s.gateway.DumpQuery(w, "SELECT * FROM food_orders WHERE login = ?", login)
}

// DumpRecentOrders writes the five most recent order rows for a login
// to w and returns the row count.
func (s *OrderService) DumpRecentOrders(w io.Writer, login string) (int, error) {
	return s.gateway.DumpQuery(w,
		"SELECT * FROM food_orders WHERE login = ? ORDER BY order_timestamp DESC LIMIT 5", login)
}

// OrderDetail returns the header and line items for an order ID. Ownership
// is not verified: any authenticated user can view any order.
func (s *OrderService) OrderDetail(orderID int) (*models.FoodOrder, error) {
	var order models.FoodOrder
	if err := s.db.Preload("Items").Where("order_id = ?", orderID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets an order's status (drivers and managers only; the
// caller's role is re-queried inline). The new status must read
// "incomplete" or "complete", compared case-insensitively, and is stored
// trimmed but otherwise as entered.
func (s *OrderService) UpdateStatus(caller string, orderID int, status string) error {
	role, err := lookupRole(s.db, caller)
	if err != nil {
		return err
	}
	if !strings.EqualFold(role, models.RoleDriver) && !strings.EqualFold(role, models.RoleManager) {
		return fmt.Errorf("%w: only drivers and managers can update order status", ErrAccessDenied)
	}

	var count int64
	if err := s.db.Model(&models.FoodOrder{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOrderNotFound
	}

	if !models.IsValidOrderStatus(status) {
		return ErrInvalidOrderStatus
	}
	return s.db.Model(&models.FoodOrder{}).Where("order_id = ?", orderID).
		Update("order_status", strings.TrimSpace(status)).Error
}

// nextOrderID derives a new order ID from the current maximum. Not safe
// against concurrent writers; this client never runs more than one
// statement at a time.
func (s *OrderService) nextOrderID() (int, error) {
	var next int
	err := s.db.Model(&models.FoodOrder{}).
		Select("COALESCE(MAX(order_id), 0) + 1").Scan(&next).Error
	return next, err
}
