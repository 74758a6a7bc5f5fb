package response

import (
	"crm-service/internal/usecase/commands"
	"crm-service/internal/usecase/queries"
)

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int32  `json:"stock"`
}

func FromCreateProductResult(r *commands.CreateProductResult) *ProductResponse {
	return &ProductResponse{
		ID:    r.Product.ID.String(),
		Name:  r.Product.Name,
		Price: r.Product.Price.String(),
		Stock: r.Product.Stock,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = &ProductResponse{
			ID:    v.ID.String(),
			Name:  v.Name,
			Price: v.Price.String(),
			Stock: v.Stock,
		}
	}
	return res
}
