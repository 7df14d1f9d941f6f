package console

import (
	"context"

	apporder "github.com/xiebiao/bookstore-admin/internal/application/order"
)

// OrderHandler 订单只读列表(orders子命令)
type OrderHandler struct {
	console           *Console
	listOrdersUseCase *apporder.ListOrdersUseCase
}

func NewOrderHandler(console *Console, listOrdersUseCase *apporder.ListOrdersUseCase) *OrderHandler {
	return &OrderHandler{console: console, listOrdersUseCase: listOrdersUseCase}
}

// ListOrders 列出全部订单及明细
func (h *OrderHandler) ListOrders(ctx context.Context) error {
	list, err := h.listOrdersUseCase.Execute(ctx)
	if err != nil {
		return err
	}

	for _, o := range list {
		h.console.Printf("===Order %d===\n", o.ID)
		h.console.Printf("\tCustomer: %s\n", o.Customer)
		h.console.Printf("\tStore: %s\n", o.Store)
		h.console.Printf("\tDelivery address: %s\n", o.DeliveryAddress)
		for _, item := range o.Items {
			h.console.Printf("\tISBN13: %s | Amount: %d\n", item.ISBN13, item.Amount)
		}
		h.console.Println()
	}
	return nil
}
