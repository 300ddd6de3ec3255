// internal/domain/product/entity.go
package product

import (
	"encoding/json"
	"fmt"
)

// ImageList decodes the wire form of product images. The search endpoint is
// inconsistent: it returns either an array of URLs or a single URL string.
// Both decode to a slice.
type ImageList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *ImageList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("failed to decode image urls: %w", err)
	}
	if one == "" {
		*l = ImageList{}
		return nil
	}
	*l = ImageList{one}
	return nil
}

// Product represents a product as returned by the search endpoint. The
// record is server-owned; the client treats it as read-only except for the
// locally mirrored IsLiked/LikeCount pair.
type Product struct {
	ProductID          string    `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	Price              float64   `json:"price"`
	Discount           float64   `json:"discount"` // percent, 0-100
	Brand              string    `json:"brand"`
	Color              string    `json:"color"`
	Size               string    `json:"size"`
	Material           string    `json:"material"`
	Gender             string    `json:"gender"`
	Stock              int       `json:"stock"`
	LikeCount          int       `json:"likeCount"`
	IsLiked            bool      `json:"isLiked,omitempty"`
	ImageURLs          ImageList `json:"imageUrls"`
	SellerID           string    `json:"sellerId"`
	CategoryID         string    `json:"categoryId"`
	CreatedAt          string    `json:"createdAt"`
}

// LikedProduct is the reduced shape returned by the liked-products endpoint
type LikedProduct struct {
	ProductID          string `json:"productId"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	ImageURL           string `json:"imageUrl"`
}

// AsProduct materializes a liked product as a display-only Product. Every
// attribute the liked-products endpoint does not return is zeroed, so the
// result is a projection for rendering, not a faithful product record; do
// not rely on its numeric fields.
func (lp LikedProduct) AsProduct() Product {
	images := ImageList{}
	if lp.ImageURL != "" {
		images = ImageList{lp.ImageURL}
	}
	return Product{
		ProductID:          lp.ProductID,
		ProductName:        lp.ProductName,
		ProductDescription: lp.ProductDescription,
		ImageURLs:          images,
		IsLiked:            true,
	}
}
