package domain

// SubscriptionPlan is a purchasable SaaS tier.
type SubscriptionPlan struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	NameAr        string           `json:"name_ar"`
	Description   string           `json:"description,omitempty"`
	DescriptionAr string           `json:"description_ar,omitempty"`
	PriceMonthly  float64          `json:"price_monthly"`
	PriceYearly   float64          `json:"price_yearly"`
	Features      map[string]bool  `json:"features"`
	Quotas        map[string]*int64 `json:"quotas"`
	TrialDays     int              `json:"trial_days"`
	IsFeatured    bool             `json:"is_featured"`
}

// SubscriptionInfo is the tenant's current subscription as billing
// reports it. Features is the same capability map the session caches at
// login.
type SubscriptionInfo struct {
	ID                 int64            `json:"id"`
	PlanName           string           `json:"plan_name"`
	PlanNameAr         string           `json:"plan_name_ar"`
	Status             string           `json:"status"`
	StatusDisplay      string           `json:"status_display"`
	BillingCycle       string           `json:"billing_cycle"`
	CurrentPeriodStart string           `json:"current_period_start"`
	CurrentPeriodEnd   string           `json:"current_period_end"`
	RemainingDays      int              `json:"remaining_days"`
	AutoRenew          bool             `json:"auto_renew"`
	Features           map[string]bool  `json:"features"`
	Quotas             map[string]*int64 `json:"quotas"`
}

type UsageStats struct {
	PondsUsed      int64    `json:"ponds_used"`
	PondsLimit     *int64   `json:"ponds_limit,omitempty"`
	UsersUsed      int64    `json:"users_used"`
	UsersLimit     *int64   `json:"users_limit,omitempty"`
	StorageUsedGB  float64  `json:"storage_used_gb"`
	StorageLimitGB *float64 `json:"storage_limit_gb,omitempty"`
}

type SubscriptionInvoice struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PDFURL        string  `json:"pdf_url,omitempty"`
}

// UpgradeResult is the ack for a plan upgrade request.
type UpgradeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
