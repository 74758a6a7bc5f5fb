package response

import (
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"
)

type OrderResponse struct {
	ID          string `json:"id"`
	TotalAmount string `json:"total_amount"`
	OrderDate   int64  `json:"order_date"`
	Status      string `json:"status"`
}

type OrderListItemResponse struct {
	ID            string `json:"id"`
	CustomerEmail string `json:"customer_email"`
	OrderDate     int64  `json:"order_date"`
	TotalAmount   string `json:"total_amount"`
	Status        string `json:"status"`
}

type RevenueSummaryResponse struct {
	TotalOrders  int64  `json:"total_orders"`
	TotalRevenue string `json:"total_revenue"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *OrderResponse {
	return &OrderResponse{
		ID:          r.OrderID.String(),
		TotalAmount: r.TotalAmount.String(),
		OrderDate:   r.OrderDate.Unix(),
		Status:      r.Status.String(),
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(views))
	for i, v := range views {
		res[i] = &OrderListItemResponse{
			ID:            v.ID.String(),
			CustomerEmail: v.CustomerEmail,
			OrderDate:     v.OrderDate.Unix(),
			TotalAmount:   v.TotalAmount.String(),
			Status:        v.Status,
		}
	}
	return res
}

func FromRevenueSummary(s *queries.RevenueSummary) *RevenueSummaryResponse {
	return &RevenueSummaryResponse{
		TotalOrders:  s.TotalOrders,
		TotalRevenue: s.TotalRevenue.String(),
	}
}
