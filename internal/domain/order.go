package domain

// OrderStatusPreparing is the initial status every submitted order carries.
const OrderStatusPreparing = "preparing"

// DefaultCustomerName is used when no name is supplied at checkout.
const DefaultCustomerName = "Cliente"

// OrderItem is one line of a submitted order as the kitchen intake expects it.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// OrderSnapshot is an immutable copy of the cart taken at the moment a
// checkout passes validation. It shares no structure with the live cart,
// so later cart edits cannot corrupt an in-flight submission.
type OrderSnapshot struct {
	TableNumber  string      `json:"tableNumber"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	TotalCents   int64       `json:"totalCents"`
	Notes        string      `json:"notes,omitempty"`
	Status       string      `json:"status"`
}
