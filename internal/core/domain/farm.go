package domain

// FarmInfo is the tenant's own profile shown on the settings page.
type FarmInfo struct {
	FarmName     string `json:"farm_name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	TradeNumber  string `json:"trade_number,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// FarmInfoInput updates the farm profile.
type FarmInfoInput struct {
	FarmName     string `json:"farm_name" validate:"required,min=2"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	TradeNumber  string `json:"trade_number,omitempty"`
	LogoURL      string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Currency     string `json:"currency,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
