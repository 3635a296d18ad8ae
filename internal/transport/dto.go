package transport

// CartView is one cart row joined with its product, flattened for display.
type CartView struct {
	ItemID    uint    `json:"item_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  uint    `json:"quantity"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"nombre"`
	Email    string `json:"email" form:"correo"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"correo"`
	Password string `json:"password" form:"password"`
}

type CartResponse struct {
	Items []CartView `json:"items"`
	Total float64    `json:"total"`
}
