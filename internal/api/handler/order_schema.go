package handler

import (
	"time"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

type orderResponse struct {
	OrderID      int64      `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	OrderDate    *time.Time `json:"order_date"`
	TotalAmount  float64    `json:"total_amount"`
	Status       string     `json:"status"`
}

type listOrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderResponse{
			OrderID:      order.OrderID,
			CustomerName: order.CustomerName,
			OrderDate:    order.OrderDate,
			TotalAmount:  order.TotalAmount,
			Status:       order.Status,
		})
	}
	return out
}
