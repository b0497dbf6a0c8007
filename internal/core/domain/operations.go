package domain

type FeedingLog struct {
	ID           int64   `json:"id"`
	BatchID      int64   `json:"batch_id"`
	BatchNumber  string  `json:"batch_number"`
	FeedTypeID   int64   `json:"feed_type_id"`
	FeedTypeName string  `json:"feed_type_name"`
	FeedingDate  string  `json:"feeding_date"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalCost    float64 `json:"total_cost"`
	Notes        string  `json:"notes,omitempty"`
	CreatedByID  int64   `json:"created_by_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// FeedingLogInput is the daily feeding form payload.
type FeedingLogInput struct {
	BatchID     int64   `json:"batch_id" validate:"required,gt=0"`
	FeedTypeID  int64   `json:"feed_type_id" validate:"required,gt=0"`
	FeedingDate string  `json:"feeding_date" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Notes       string  `json:"notes,omitempty"`
}

type MortalityLog struct {
	ID            int64   `json:"id"`
	BatchID       int64   `json:"batch_id"`
	BatchNumber   string  `json:"batch_number"`
	MortalityDate string  `json:"mortality_date"`
	Count         int64   `json:"count"`
	AverageWeight float64 `json:"average_weight,omitempty"`
	Cause         string  `json:"cause,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedByID   int64   `json:"created_by_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// MortalityLogInput is the daily mortality form payload.
type MortalityLogInput struct {
	BatchID        int64   `json:"batch_id" validate:"required,gt=0"`
	MortalityDate  string  `json:"mortality_date" validate:"required"`
	Count          int64   `json:"count" validate:"required,gt=0"`
	AverageWeightG float64 `json:"average_weight_g" validate:"required,gt=0"`
	Cause          string  `json:"cause,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// BatchStatistics is the upstream-computed summary for one batch.
type BatchStatistics struct {
	BatchID           int64   `json:"batch_id"`
	BatchNumber       string  `json:"batch_number"`
	TotalFeedConsumed float64 `json:"total_feed_consumed"`
	TotalFeedCost     float64 `json:"total_feed_cost"`
	TotalMortality    int64   `json:"total_mortality"`
	CurrentCount      int64   `json:"current_count"`
	CurrentWeight     float64 `json:"current_weight"`
	AverageWeight     float64 `json:"average_weight"`
	MortalityRate     float64 `json:"mortality_rate"`
	FCR               float64 `json:"fcr,omitempty"`
	AvgDailyFeed      float64 `json:"avg_daily_feed"`
	FeedingDays       int64   `json:"feeding_days"`
}
