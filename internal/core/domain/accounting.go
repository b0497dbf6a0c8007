package domain

// Account is one node of the chart of accounts. Balances are computed
// upstream by the double-entry engine; the gateway never does the math.
type Account struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	ArabicName  string  `json:"arabic_name"`
	AccountType string  `json:"account_type"`
	ParentID    int64   `json:"parent_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Balance     float64 `json:"balance"`
	IsActive    bool    `json:"is_active"`
}

type JournalEntryLine struct {
	ID          int64   `json:"id"`
	AccountID   int64   `json:"account_id"`
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type JournalEntry struct {
	ID            int64              `json:"id"`
	EntryNumber   string             `json:"entry_number"`
	EntryDate     string             `json:"entry_date"`
	Description   string             `json:"description"`
	ReferenceType string             `json:"reference_type,omitempty"`
	ReferenceID   int64              `json:"reference_id,omitempty"`
	IsPosted      bool               `json:"is_posted"`
	TotalDebit    float64            `json:"total_debit"`
	TotalCredit   float64            `json:"total_credit"`
	Lines         []JournalEntryLine `json:"lines"`
	CreatedByID   int64              `json:"created_by_id,omitempty"`
	CreatedAt     string             `json:"created_at"`
}

// JournalEntryInput is the manual journal entry form payload. Debit and
// credit balancing is enforced upstream.
type JournalEntryInput struct {
	EntryDate   string                  `json:"entry_date" validate:"required"`
	Description string                  `json:"description" validate:"required"`
	Lines       []JournalEntryLineInput `json:"lines" validate:"required,min=2,dive"`
}

type JournalEntryLineInput struct {
	AccountID   int64   `json:"account_id" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=debit credit"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description,omitempty"`
}

type TrialBalanceItem struct {
	AccountID   int64   `json:"account_id"`
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

type TrialBalance struct {
	Date        string             `json:"date"`
	Items       []TrialBalanceItem `json:"items"`
	TotalDebit  float64            `json:"total_debit"`
	TotalCredit float64            `json:"total_credit"`
}

type BalanceSheetLine struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type BalanceSheetSection struct {
	Items []BalanceSheetLine `json:"items"`
	Total float64            `json:"total"`
}

type BalanceSheet struct {
	Date                      string              `json:"date"`
	Assets                    BalanceSheetSection `json:"assets"`
	Liabilities               BalanceSheetSection `json:"liabilities"`
	Equity                    BalanceSheetSection `json:"equity"`
	TotalLiabilitiesAndEquity float64             `json:"total_liabilities_and_equity"`
}

// BiologicalAssetRevaluation is an IAS 41 fair-value measurement of a
// live batch, computed upstream.
type BiologicalAssetRevaluation struct {
	ID                 int64   `json:"id"`
	BatchID            int64   `json:"batch_id"`
	BatchNumber        string  `json:"batch_number"`
	RevaluationDate    string  `json:"revaluation_date"`
	CarryingAmount     float64 `json:"carrying_amount"`
	FairValue          float64 `json:"fair_value"`
	MarketPricePerKg   float64 `json:"market_price_per_kg"`
	CurrentWeightKg    float64 `json:"current_weight_kg"`
	CurrentCount       int64   `json:"current_count"`
	UnrealizedGainLoss float64 `json:"unrealized_gain_loss"`
	JournalEntryID     int64   `json:"journal_entry_id,omitempty"`
	Notes              string  `json:"notes,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
}
