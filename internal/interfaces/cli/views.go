// internal/interfaces/cli/views.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/auth"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/cart"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/domain/product"
	"github.com/shopspring/decimal"
)

// discountedPrice computes the display price after the percent discount.
// Display math only; cart totals always come from the server.
func discountedPrice(p product.Product) decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	discount := price.Mul(decimal.NewFromFloat(p.Discount)).Div(decimal.NewFromInt(100))
	return price.Sub(discount)
}

func renderProduct(w io.Writer, p product.Product) {
	fmt.Fprintf(w, "%s  %s\n", p.ProductID, p.ProductName)
	fmt.Fprintf(w, "  %s\n", p.Brand)
	if p.Discount > 0 {
		fmt.Fprintf(w, "  ₹%s  (₹%s, %.0f%% off)\n",
			discountedPrice(p).StringFixed(2), decimal.NewFromFloat(p.Price).String(), p.Discount)
	} else {
		fmt.Fprintf(w, "  ₹%s\n", discountedPrice(p).StringFixed(2))
	}
	details := []string{p.Gender, p.Size, p.Color}
	fmt.Fprintf(w, "  %s\n", strings.Join(details, " • "))
	if p.IsLiked {
		fmt.Fprintf(w, "  ♥ %d\n", p.LikeCount)
	} else {
		fmt.Fprintf(w, "  ♡ %d\n", p.LikeCount)
	}
}

// renderLikedProduct renders the reduced liked-products projection. Price
// and attribute fields are zeroed there, so only name and description show.
func renderLikedProduct(w io.Writer, p product.Product) {
	fmt.Fprintf(w, "%s  %s\n", p.ProductID, p.ProductName)
	if p.ProductDescription != "" {
		fmt.Fprintf(w, "  %s\n", p.ProductDescription)
	}
}

func renderCart(w io.Writer, c *cart.CartResponse) {
	if c == nil || c.TotalItems == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}

	for _, item := range c.Items {
		fmt.Fprintf(w, "%dx %s (%s, %s)  ₹%.2f\n",
			item.Quantity, item.ProductName, item.Size, item.Color, item.TotalDiscountedPrice)
	}
	fmt.Fprintf(w, "----\n")
	fmt.Fprintf(w, "Items:     %d\n", c.TotalItems)
	fmt.Fprintf(w, "Original:  ₹%.2f\n", c.TotalOriginalPrice)
	fmt.Fprintf(w, "Discount:  -₹%.2f\n", c.TotalDiscount)
	fmt.Fprintf(w, "Subtotal:  ₹%.2f\n", c.Subtotal)
	fmt.Fprintf(w, "Shipping:  ₹%.2f\n", c.ShippingCharge)
	fmt.Fprintf(w, "Total:     ₹%.2f\n", c.FinalTotal)
}

func renderUser(w io.Writer, u *auth.User) {
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	if u.Phone != "" {
		fmt.Fprintf(w, "Phone: %s\n", u.Phone)
	}
	fmt.Fprintf(w, "Member since %s\n", u.CreatedAt)
}
