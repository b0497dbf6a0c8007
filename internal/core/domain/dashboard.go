package domain

type DashboardStats struct {
	TotalPonds         int64   `json:"total_ponds"`
	ActiveBatches      int64   `json:"active_batches"`
	TotalBiomass       float64 `json:"total_biomass"`
	MortalityRate      float64 `json:"mortality_rate"`
	TotalFeedValue     float64 `json:"total_feed_value"`
	TotalMedicineValue float64 `json:"total_medicine_value"`
}

type FarmOverview struct {
	ActivePonds            int64   `json:"active_ponds"`
	ActiveBatches          int64   `json:"active_batches"`
	TotalBiomassKg         float64 `json:"total_biomass_kg"`
	FeedConsumptionWeekKg  float64 `json:"feed_consumption_week_kg"`
	FeedConsumptionMonthKg float64 `json:"feed_consumption_month_kg"`
	MortalityCountWeek     int64   `json:"mortality_count_week"`
	MortalityCountMonth    int64   `json:"mortality_count_month"`
}

type BatchPerformanceItem struct {
	BatchID     int64    `json:"batch_id"`
	BatchNumber string   `json:"batch_number"`
	SpeciesName string   `json:"species_name"`
	PondName    string   `json:"pond_name"`
	FCR         *float64 `json:"fcr"`
}

type BatchPerformance struct {
	Batches []BatchPerformanceItem `json:"batches"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
