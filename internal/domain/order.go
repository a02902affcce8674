package domain

// OrderRequest is the JSON body sent to the order-creation endpoint.
type OrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	City         string      `json:"city"`
	Address      string      `json:"address"`
	Notes        string      `json:"notes,omitempty"`
	TotalPrice   float64     `json:"total_price"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID   string   `json:"product_id,omitempty"`
	ProductName string   `json:"product_name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Options     *Options `json:"options,omitempty"`
}
