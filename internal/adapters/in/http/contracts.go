package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Available carries the remaining stock on insufficient-inventory errors.
	Available *int `json:"available,omitempty"`
}

// AddressPayload is one address section of the checkout request body.
type AddressPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
}

// PaymentPayload is the payment section of the checkout request body.
// The card number and CVV are consumed during validation and never echoed.
type PaymentPayload struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	CVV            string `json:"cvv"`
	Expiry         string `json:"expiryDate"`
}

// CheckoutRequest is the POST /api/v1/checkout body.
type CheckoutRequest struct {
	BillingInfo          *AddressPayload `json:"billingInfo"`
	ShippingInfo         *AddressPayload `json:"shippingInfo"`
	PaymentInfo          *PaymentPayload `json:"paymentInfo"`
	UseShippingAsBilling bool            `json:"useShippingAsBilling"`
}

// OrderSummary is the minimal order view returned by checkout.
type OrderSummary struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Subtotal    string    `json:"subtotal"`
	TaxAmount   string    `json:"taxAmount"`
	TotalAmount string    `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CheckoutResponse is the 201 body of POST /api/v1/checkout.
type CheckoutResponse struct {
	Message string       `json:"message"`
	Order   OrderSummary `json:"order"`
}

// OrderItemView is one order line in a full order view.
type OrderItemView struct {
	VehicleID    string `json:"vehicleId"`
	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	TotalPrice   string `json:"totalPrice"`
}

// OrderView is the full order representation returned by the query endpoints.
type OrderView struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	UserID       string          `json:"userId"`
	Status       string          `json:"status"`
	Subtotal     string          `json:"subtotal"`
	TaxAmount    string          `json:"taxAmount"`
	TotalAmount  string          `json:"totalAmount"`
	CardType     string          `json:"cardType"`
	CardLastFour string          `json:"cardLastFour"`
	AdminNotes   string          `json:"adminNotes,omitempty"`
	ProcessedAt  *time.Time      `json:"processedAt,omitempty"`
	ShippedAt    *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	Items        []OrderItemView `json:"items"`
}

// OrderListResponse is one page of the admin order list.
type OrderListResponse struct {
	Orders      []OrderView `json:"orders"`
	TotalOrders int64       `json:"totalOrders"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// UpdateOrderStatusRequest is the PATCH /api/v1/admin/orders/:id/status body.
type UpdateOrderStatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}
