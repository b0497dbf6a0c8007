package domain

// TenantSummary is what the platform operator sees per customer farm.
type TenantSummary struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	SchemaName         string `json:"schema_name"`
	Domain             string `json:"domain"`
	SubscriptionStatus string `json:"subscription_status"`
	PlanName           string `json:"plan_name"`
	EndDate            string `json:"end_date,omitempty"`
	IsActive           bool   `json:"is_active"`
	CreatedOn          string `json:"created_on"`
	UserCount          int64  `json:"user_count,omitempty"`
}

type SaaSStats struct {
	TotalTenants        int64   `json:"total_tenants"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	ExpiredSubscription int64   `json:"expired_subscriptions"`
	TrialSubscriptions  int64   `json:"trial_subscriptions"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	TenantsExpiringSoon int64   `json:"tenants_expiring_soon"`
}

// CreateTenantInput provisions a new customer farm.
type CreateTenantInput struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Domain        string `json:"domain" validate:"required"`
	PlanID        int64  `json:"plan_id" validate:"required,gt=0"`
	AdminUsername string `json:"admin_username" validate:"required,min=3"`
	AdminPassword string `json:"admin_password" validate:"required,min=6"`
}

// TenantActionResult is the ack for suspend/activate operations.
type TenantActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ImpersonationGrant is the token pair the platform operator receives
// to act inside a tenant.
type ImpersonationGrant struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TenantID     int64  `json:"tenant_id"`
	RedirectURL  string `json:"redirect_url"`
}
