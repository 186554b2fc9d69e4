// internal/platform/types.go
package platform

// Product is a catalog product as the platform reports it
type Product struct {
	ProductID     int      `json:"productId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	BasePrice     string   `json:"basePrice"`
	CategoryID    int      `json:"categoryId"`
	SupplierID    int      `json:"supplierId"`
	StockQuantity int      `json:"stockQuantity"`
	BaseProductID *int     `json:"baseProductId"`
	MediaPaths    []string `json:"mediaPaths"`
}

// PageInfo carries pagination metadata for list queries
type PageInfo struct {
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// ProductPage is one page of products plus its pagination metadata
type ProductPage struct {
	Products []Product `json:"products"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Pagination selects one page of a list query
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// OrderBy selects the ordering of a list query
type OrderBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

// Paginator is the platform's OrderAndPagination input
type Paginator struct {
	OrderBy    OrderBy    `json:"orderBy"`
	Pagination Pagination `json:"pagination"`
}

// DefaultPaginator returns the ordering and page the storefront uses when
// the caller does not specify one
func DefaultPaginator(page, pageSize int) Paginator {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return Paginator{
		OrderBy:    OrderBy{Column: "DATE", Order: "ASC"},
		Pagination: Pagination{Page: page, PageSize: pageSize},
	}
}

// Category is a catalog category
type Category struct {
	CategoryID       int    `json:"categoryId"`
	Name             string `json:"name"`
	ParentCategoryID *int   `json:"parentCategoryId"`
}

// Address is a saved customer address
type Address struct {
	AddressID     int    `json:"addressId"`
	AddressTypeID int    `json:"addressTypeId"`
	AddressType   string `json:"addressType,omitempty"`
	City          string `json:"city"`
	Country       string `json:"country"`
	CustomerID    int    `json:"customerId"`
	IsDefault     bool   `json:"isDefault"`
	PostalCode    string `json:"postalCode"`
	State         string `json:"state"`
	StreetAddress string `json:"streetAddress"`
}

// AddressInput is the payload for registering or updating an address
type AddressInput struct {
	AddressType   string `json:"addressType" binding:"required"`
	City          string `json:"city" binding:"required"`
	Country       string `json:"country" binding:"required"`
	CustomerID    int    `json:"customerId" binding:"required"`
	IsDefault     bool   `json:"isDefault"`
	PostalCode    string `json:"postalCode" binding:"required"`
	State         string `json:"state" binding:"required"`
	StreetAddress string `json:"streetAddress" binding:"required"`
}

// PaymentMethod is a saved payment method
type PaymentMethod struct {
	PaymentMethodID    int    `json:"paymentMethodId"`
	CustomerID         int    `json:"customerId"`
	PaymentType        string `json:"paymentType"`
	IsDefault          bool   `json:"isDefault"`
	BankName           string `json:"bankName,omitempty"`
	AccountHolderName  string `json:"accountHolderName,omitempty"`
	CardNumber         string `json:"cardNumber,omitempty"`
	CardExpirationDate string `json:"cardExpirationDate,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	UPIID              string `json:"upiId,omitempty"`
	BankAccountNumber  string `json:"bankAccountNumber,omitempty"`
	IFSCCode           string `json:"ifscCode,omitempty"`
	CardTypeID         *int   `json:"cardTypeId,omitempty"`
}

// PaymentMethodInput is the payload for registering a new payment method.
// PaymentType is one of card, upi, iban or netbanking; the remaining fields
// apply per type.
type PaymentMethodInput struct {
	PaymentType        string `json:"paymentType" binding:"required,oneof=card upi iban netbanking"`
	IsDefault          bool   `json:"isDefault"`
	BankName           string `json:"bankName,omitempty"`
	AccountHolderName  string `json:"accountHolderName,omitempty"`
	CardNumber         string `json:"cardNumber,omitempty"`
	CardExpirationDate string `json:"cardExpirationDate,omitempty"`
	IBAN               string `json:"iban,omitempty"`
	UPIID              string `json:"upiId,omitempty"`
	BankAccountNumber  string `json:"bankAccountNumber,omitempty"`
	IFSCCode           string `json:"ifscCode,omitempty"`
	CardTypeName       string `json:"cardTypeName,omitempty"`
}

// OrderItem is one {productId, quantity} pair of an order submission.
// Price is intentionally absent: authoritative pricing is the platform's
// responsibility.
type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// RegisterOrderInput is the single order-submission payload
type RegisterOrderInput struct {
	ShippingAddressID int         `json:"shippingAddressId"`
	PaymentMethodID   int         `json:"paymentMethodId"`
	DiscountCode      string      `json:"discountCode,omitempty"`
	OrderItems        []OrderItem `json:"orderItems"`
}

// Order is a registered order as the platform reports it
type Order struct {
	OrderID           int    `json:"orderId"`
	CustomerID        int    `json:"customerId"`
	OrderDate         string `json:"orderDate"`
	TotalAmount       string `json:"totalAmount"`
	Status            string `json:"status"`
	ShippingAddressID int    `json:"shippingAddressId"`
	PaymentMethodID   int    `json:"paymentMethodId"`
	DiscountID        *int   `json:"discountId"`
}

// LoginResult carries the session token and role returned by login
type LoginResult struct {
	Token    string `json:"token"`
	UserRole string `json:"userRole"`
}

// CustomerProfile is the customer identity attached to a user account
type CustomerProfile struct {
	CustomerID int    `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	UserID     int    `json:"userId"`
}

// SupplierProfile is the supplier identity attached to a user account
type SupplierProfile struct {
	SupplierID   int    `json:"supplierId"`
	Name         string `json:"name"`
	ContactPhone string `json:"contactPhone"`
	UserID       int    `json:"userId"`
}

// ProductInput is the payload for registering or updating a supplier product
type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	BasePrice     string   `json:"basePrice" binding:"required"`
	CategoryID    int      `json:"categoryId" binding:"required"`
	SupplierID    int      `json:"supplierId"`
	StockQuantity int      `json:"stockQuantity"`
	BaseProductID *int     `json:"baseProductId,omitempty"`
	MediaPaths    []string `json:"mediaPaths,omitempty"`
}
