package domain

type CostPerKgReportItem struct {
	BatchID       int64   `json:"batch_id"`
	BatchNumber   string  `json:"batch_number"`
	SpeciesName   string  `json:"species_name"`
	TotalFeedCost float64 `json:"total_feed_cost"`
	TotalCost     float64 `json:"total_cost"`
	TotalWeightKg float64 `json:"total_weight_kg"`
	CostPerKg     float64 `json:"cost_per_kg"`
	Status        string  `json:"status"`
}

type BatchProfitabilityItem struct {
	BatchID           int64   `json:"batch_id"`
	BatchNumber       string  `json:"batch_number"`
	SpeciesName       string  `json:"species_name"`
	PondName          string  `json:"pond_name"`
	InitialCost       float64 `json:"initial_cost"`
	TotalFeedCost     float64 `json:"total_feed_cost"`
	TotalMedicineCost float64 `json:"total_medicine_cost"`
	TotalCost         float64 `json:"total_cost"`
	TotalRevenue      float64 `json:"total_revenue"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profit_margin"`
	Status            string  `json:"status"`
}

type FeedEfficiencyItem struct {
	BatchID             int64   `json:"batch_id"`
	BatchNumber         string  `json:"batch_number"`
	SpeciesName         string  `json:"species_name"`
	TotalFeedConsumedKg float64 `json:"total_feed_consumed_kg"`
	TotalWeightGainKg   float64 `json:"total_weight_gain_kg"`
	FCR                 float64 `json:"fcr,omitempty"`
	AvgDailyFeedKg      float64 `json:"avg_daily_feed_kg"`
	FeedingDays         int64   `json:"feeding_days"`
}

type MortalityAnalysisItem struct {
	BatchID           int64   `json:"batch_id"`
	BatchNumber       string  `json:"batch_number"`
	SpeciesName       string  `json:"species_name"`
	PondName          string  `json:"pond_name"`
	InitialCount      int64   `json:"initial_count"`
	CurrentCount      int64   `json:"current_count"`
	TotalMortality    int64   `json:"total_mortality"`
	MortalityRate     float64 `json:"mortality_rate"`
	AvgDailyMortality float64 `json:"avg_daily_mortality"`
	MortalityDays     int64   `json:"mortality_days"`
	Status            string  `json:"status"`
}
