package services

import (
	"context"
	"encoding/json"

	"dunestore/internal/domain"
	applog "dunestore/internal/log"
	"dunestore/internal/repos"

	"github.com/google/uuid"
)

// OrderService writes orders to the local store. It satisfies
// checkout.OrderPlacer, so the same flow works against it or against a
// remote endpoint.
type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place creates the order header and then the line items. The header
// is the hard requirement; a failed item write is logged and skipped
// so the shopper still gets their order id.
func (s *OrderService) Place(ctx context.Context, req domain.OrderRequest) (string, error) {
	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, req.CustomerName, req.Phone, req.City, req.Address, req.Notes, req.TotalPrice); err != nil {
		return "", err
	}
	for i, it := range req.Items {
		optJSON := ""
		if it.Options != nil && it.Options.Len() > 0 {
			if b, err := json.Marshal(it.Options); err == nil {
				optJSON = string(b)
			}
		}
		if err := s.Orders.InsertItem(orderID, i+1, it.ProductID, it.ProductName, it.Price, it.Quantity, optJSON); err != nil {
			applog.Error(nil, "order.item.insert", err, map[string]any{"order_id": orderID, "line": i + 1})
		}
	}
	return orderID, nil
}
