package domain

// Species is a cultivable fish species known to the farm.
type Species struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ArabicName     string `json:"arabic_name"`
	ScientificName string `json:"scientific_name,omitempty"`
	Description    string `json:"description,omitempty"`
}

type Pond struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	PondType string  `json:"pond_type"`
	Capacity float64 `json:"capacity"`
	Location string  `json:"location,omitempty"`
	Status   string  `json:"status"`
	IsActive bool    `json:"is_active"`
}

// PondInput is the pond form payload.
type PondInput struct {
	Name               string  `json:"name" validate:"required,min=2"`
	PondType           string  `json:"pond_type" validate:"required"`
	CapacityCubicMeter float64 `json:"capacity_cubic_meters" validate:"required,gt=0"`
	Location           string  `json:"location,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// BatchPond and BatchSpecies are the embedded references a batch
// carries instead of full records.
type BatchPond struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BatchSpecies struct {
	ID         int64  `json:"id"`
	ArabicName string `json:"arabic_name"`
}

// Batch is a stocked population of fish in one pond.
type Batch struct {
	ID            int64        `json:"id"`
	BatchNumber   string       `json:"batch_number"`
	Pond          BatchPond    `json:"pond"`
	Species       BatchSpecies `json:"species"`
	StartDate     string       `json:"start_date"`
	InitialCount  int64        `json:"initial_count"`
	InitialWeight float64      `json:"initial_weight"`
	InitialCost   float64      `json:"initial_cost"`
	CurrentCount  int64        `json:"current_count"`
	Status        string       `json:"status"`
	Notes         string       `json:"notes,omitempty"`
}

// BatchInput is the batch form payload.
type BatchInput struct {
	BatchNumber         string  `json:"batch_number" validate:"required"`
	SpeciesID           int64   `json:"species_id" validate:"required,gt=0"`
	PondID              int64   `json:"pond_id" validate:"required,gt=0"`
	InitialCount        int64   `json:"initial_count" validate:"required,gt=0"`
	InitialWeight       float64 `json:"initial_weight" validate:"required,gt=0"`
	InitialCost         float64 `json:"initial_cost" validate:"gte=0"`
	StockingDate        string  `json:"stocking_date" validate:"required"`
	ExpectedHarvestDate string  `json:"expected_harvest_date,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

type FeedType struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	ArabicName        string  `json:"arabic_name"`
	ProteinPercentage float64 `json:"protein_percentage,omitempty"`
	Unit              string  `json:"unit"`
}

type FeedInventory struct {
	ID         int64    `json:"id"`
	FeedType   FeedType `json:"feed_type"`
	Quantity   float64  `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	ExpiryDate string   `json:"expiry_date,omitempty"`
	Location   string   `json:"location,omitempty"`
}

// FeedInventoryInput is the feed stock form payload.
type FeedInventoryInput struct {
	FeedTypeID int64   `json:"feed_type_id" validate:"required,gt=0"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

type Medicine struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ArabicName       string `json:"arabic_name"`
	ActiveIngredient string `json:"active_ingredient,omitempty"`
	Unit             string `json:"unit"`
}

type MedicineInventory struct {
	ID         int64    `json:"id"`
	Medicine   Medicine `json:"medicine"`
	Quantity   float64  `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	ExpiryDate string   `json:"expiry_date,omitempty"`
	Location   string   `json:"location,omitempty"`
}

// MedicineInventoryInput is the medicine stock form payload.
type MedicineInventoryInput struct {
	MedicineID int64   `json:"medicine_id" validate:"required,gt=0"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}
