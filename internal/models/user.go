// internal/models/user.go
package models

// User is the session-scoped shopper set by the mock login. A nil *User means
// nobody is logged in.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CartItem holds one product and its quantity. Quantity is always >= 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
