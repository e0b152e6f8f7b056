package entities

import "errors"

// Common errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("product not found in cart")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

// Product represents a catalog product. The id is an integer, unique within
// the product file, and assigned by the store on creation.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      bool     `json:"status"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// Cart represents a shopping cart. The id is an opaque string assigned on
// creation; Items holds at most one line item per distinct product id.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"products"`
}

// CartItem pairs a product reference with a quantity. Quantity is always
// positive; a line item that would reach zero is removed instead.
type CartItem struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}

// FindItem returns the index of the line item for the given product id,
// or -1 if the cart does not contain it.
func (c *Cart) FindItem(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
