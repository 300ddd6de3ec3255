// internal/domain/cart/entity.go
package cart

// CartItem represents one line of the server-computed cart
type CartItem struct {
	ProductID            string  `json:"productId"`
	ProductName          string  `json:"productName"`
	ImageURL             string  `json:"imageUrl"`
	Color                string  `json:"color"`
	Size                 string  `json:"size"`
	Gender               string  `json:"gender"`
	Material             string  `json:"material"`
	Brand                string  `json:"brand"`
	SellerID             string  `json:"sellerId"`
	Price                float64 `json:"price"`
	DiscountOnProduct    float64 `json:"discountOnProduct"`
	DiscountAmount       float64 `json:"discountAmount"`
	Quantity             int     `json:"quantity"`
	TotalDiscountedPrice float64 `json:"totalDiscountedPrice"`
}

// CartResponse is the cart aggregate. Every total is computed server-side;
// the client never recomputes them.
type CartResponse struct {
	TotalItems         int        `json:"totalItems"`
	Items              []CartItem `json:"items"`
	TotalOriginalPrice float64    `json:"totalOriginalPrice"`
	TotalDiscount      float64    `json:"totalDiscount"`
	Subtotal           float64    `json:"subtotal"`
	ShippingCharge     float64    `json:"shippingCharge"`
	FinalTotal         float64    `json:"finalTotal"`
	Message            string     `json:"message"`
}
