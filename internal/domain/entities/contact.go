package entities

// ContactInput represents a contact form submission
type ContactInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Stats represents catalog-wide aggregate counts
type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalListings   int64 `json:"totalListings"`
	ListingsForSale int64 `json:"listingsForSale"`
	ListingsForRent int64 `json:"listingsForRent"`
}
