package domain

type Harvest struct {
	ID            int64   `json:"id"`
	BatchID       int64   `json:"batch_id"`
	BatchNumber   string  `json:"batch_number"`
	HarvestDate   string  `json:"harvest_date"`
	QuantityKg    float64 `json:"quantity_kg"`
	Count         int64   `json:"count"`
	AverageWeight float64 `json:"average_weight"`
	FairValue     float64 `json:"fair_value"`
	CostPerKg     float64 `json:"cost_per_kg"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedByID   int64   `json:"created_by_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// HarvestInput is the harvest registration form payload.
type HarvestInput struct {
	BatchID       int64   `json:"batch_id" validate:"required,gt=0"`
	HarvestDate   string  `json:"harvest_date" validate:"required"`
	QuantityKg    float64 `json:"quantity_kg" validate:"required,gt=0"`
	Count         int64   `json:"count" validate:"required,gt=0"`
	PricePerKg    float64 `json:"price_per_kg" validate:"gte=0"`
	Notes         string  `json:"notes,omitempty"`
}

type SalesOrderLine struct {
	ID         int64   `json:"id"`
	HarvestID  int64   `json:"harvest_id"`
	QuantityKg float64 `json:"quantity_kg"`
	UnitPrice  float64 `json:"unit_price"`
	LineTotal  float64 `json:"line_total"`
}

type SalesOrder struct {
	ID              int64            `json:"id"`
	OrderNumber     string           `json:"order_number"`
	OrderDate       string           `json:"order_date"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	CustomerAddress string           `json:"customer_address,omitempty"`
	Subtotal        float64          `json:"subtotal"`
	VATRate         float64          `json:"vat_rate"`
	VATAmount       float64          `json:"vat_amount"`
	TotalAmount     float64          `json:"total_amount"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	Lines           []SalesOrderLine `json:"lines"`
	CreatedByID     int64            `json:"created_by_id,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

// SalesOrderInput is the sales order form payload. VAT math and order
// numbering happen upstream.
type SalesOrderInput struct {
	OrderDate       string                `json:"order_date" validate:"required"`
	CustomerName    string                `json:"customer_name" validate:"required,min=2"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	VATRate         float64               `json:"vat_rate" validate:"gte=0,lte=100"`
	Lines           []SalesOrderLineInput `json:"lines" validate:"required,min=1,dive"`
	Notes           string                `json:"notes,omitempty"`
}

type SalesOrderLineInput struct {
	HarvestID  int64   `json:"harvest_id" validate:"required,gt=0"`
	QuantityKg float64 `json:"quantity_kg" validate:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"required,gt=0"`
}

// Invoice carries the ZATCA compliance fields (qr code, uuid, clearance
// status) exactly as the upstream tax engine produced them.
type Invoice struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	SalesOrderID  int64   `json:"sales_order_id"`
	InvoiceDate   string  `json:"invoice_date"`
	Subtotal      float64 `json:"subtotal"`
	VATAmount     float64 `json:"vat_amount"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	QRCode        string  `json:"qr_code,omitempty"`
	UUID          string  `json:"uuid,omitempty"`
	ZATCAStatus   string  `json:"zatca_status,omitempty"`
	CreatedByID   int64   `json:"created_by_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
