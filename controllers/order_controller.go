package controllers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/services"
)

// placeOrder gathers a store and item/quantity pairs, then hands the order
// to the service. Unknown items are reported and skipped; the order is
// cancelled when nothing valid was entered.
func (s *Session) placeOrder() {
	storeID, err := s.readInt("Enter store ID: ")
	if err != nil {
		fmt.Fprintln(s.out, "Your input is invalid!")
		return
	}

	if err := s.orders.StoreAcceptsOrders(storeID); err != nil {
		fmt.Fprintln(s.out, "Cannot place order. The selected store is closed.")
		return
	}

	var lines []services.OrderLine
	for {
		name, ok := s.readLine("Enter item name (or type 'done' to finish): ")
		if !ok {
			return
		}
		if strings.EqualFold(name, "done") {
			break
		}

		quantity, err := s.readInt("Enter quantity: ")
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}

		if _, err := s.menu.GetItem(name); err != nil {
			fmt.Fprintln(s.out, "Item not found. Please enter a valid item.")
			continue
		}
		lines = append(lines, services.OrderLine{ItemName: name, Quantity: quantity})
	}

	if len(lines) == 0 {
		fmt.Fprintln(s.out, "No items selected. Order cancelled.")
		return
	}

	order, _, err := s.orders.PlaceOrder(s.login, storeID, lines)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Order placed successfully. Total Price: $%.2f Order ID: %d\n",
		order.TotalPrice, order.OrderID)
}

// viewAllOrders dumps every order row belonging to the caller.
func (s *Session) viewAllOrders() {
	var buf bytes.Buffer
	count, err := s.orders.DumpAllOrders(&buf, s.login)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if count == 0 {
		fmt.Fprintln(s.out, "No orders found.")
		return
	}
	fmt.Fprintln(s.out, "All Orders:")
	fmt.Fprint(s.out, buf.String())
}

// viewRecentOrders dumps the caller's five most recent order rows.
func (s *Session) viewRecentOrders() {
	var buf bytes.Buffer
	count, err := s.orders.DumpRecentOrders(&buf, s.login)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if count == 0 {
		fmt.Fprintln(s.out, "No recent orders found.")
		return
	}
	fmt.Fprintln(s.out, "Recent Orders:")
	fmt.Fprint(s.out, buf.String())
}

// viewOrderInfo prints the header and line items for any order ID. The
// caller does not have to own the order.
func (s *Session) viewOrderInfo() {
	orderID, err := s.readInt("Enter Order ID: ")
	if err != nil {
		fmt.Fprintln(s.out, "Your input is invalid!")
		return
	}

	order, err := s.orders.OrderDetail(orderID)
	if err != nil {
		fmt.Fprintln(s.out, "Order not found.")
		return
	}

	fmt.Fprintln(s.out, "Order Details:")
	fmt.Fprintln(s.out, "Timestamp:", order.OrderTimestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(s.out, "Total Price: $%.2f\n", order.TotalPrice)
	fmt.Fprintln(s.out, "Status:", order.OrderStatus)

	fmt.Fprintln(s.out, "Items in Order:")
	for _, item := range order.Items {
		fmt.Fprintf(s.out, "Item: %s, Quantity: %d\n", item.ItemName, item.Quantity)
	}
}

// updateOrderStatus flips an order between incomplete and complete.
// Drivers and managers only; the service re-checks the role before
// writing.
func (s *Session) updateOrderStatus() {
	role, err := s.accounts.Role(s.login)
	if err != nil {
		fmt.Fprintln(s.out, "User not found.")
		return
	}
	if !strings.EqualFold(role, models.RoleDriver) && !strings.EqualFold(role, models.RoleManager) {
		fmt.Fprintln(s.out, "Access denied. Only drivers and managers can update order status.")
		return
	}

	orderID, err := s.readInt("Enter Order ID: ")
	if err != nil {
		fmt.Fprintln(s.out, "Your input is invalid!")
		return
	}

	status, ok := s.readLine("Enter new status (incomplete or complete): ")
	if !ok {
		return
	}

	if err := s.orders.UpdateStatus(s.login, orderID, status); err != nil {
		switch err {
		case services.ErrOrderNotFound:
			fmt.Fprintln(s.out, "Order not found.")
		case services.ErrInvalidOrderStatus:
			fmt.Fprintln(s.out, "Invalid status. Status must be 'incomplete' or 'complete'.")
		default:
			fmt.Fprintln(s.out, err)
		}
		return
	}
	fmt.Fprintln(s.out, "Order status updated successfully.")
}
