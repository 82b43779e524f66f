// Package model holds the persisted record types, one per store collection.
// The json tags double as the GraphQL field names: the executor projects
// responses by tag, and the store serializes records with the same tags.
package model

// Product is a catalog entry. No field is constrained beyond its type.
type Product struct {
	ID                 string  `json:"id"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Images             string  `json:"images"`
	Price              float64 `json:"price"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Thumbnail          string  `json:"thumbnail"`
	Title              string  `json:"title"`
}

// Order is immutable once created. CreatedDate is stamped by the server in
// RFC 3339 UTC; there is no update or delete operation for orders.
type Order struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	ZipCode     string  `json:"zipCode"`
	TotalAmount float64 `json:"totalAmount"`
	Items       string  `json:"items"`
	CreatedDate string  `json:"createdDate"`
}

// User is created once via registration. Password always holds the bcrypt
// hash; plaintext never reaches the store.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}
