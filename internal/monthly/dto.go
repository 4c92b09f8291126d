package monthly

// UpsertRequest carries one month of figures and targets.
type UpsertRequest struct {
	Year                    int     `json:"year" validate:"required,gte=2000,lte=2100"`
	Month                   int     `json:"month" validate:"required,gte=1,lte=12"`
	Sales                   int64   `json:"sales" validate:"gte=0"`
	FoodCost                int64   `json:"food_cost" validate:"gte=0"`
	BeverageCost            int64   `json:"beverage_cost" validate:"gte=0"`
	LaborCost               int64   `json:"labor_cost" validate:"gte=0"`
	OtherCost               int64   `json:"other_cost" validate:"gte=0"`
	CustomerCount           int64   `json:"customer_count" validate:"gte=0"`
	TargetSales             int64   `json:"target_sales" validate:"gte=0"`
	TargetFoodCostRatio     float64 `json:"target_food_cost_ratio" validate:"gte=0,lte=100"`
	TargetBeverageCostRatio float64 `json:"target_beverage_cost_ratio" validate:"gte=0,lte=100"`
	TargetLaborCostRatio    float64 `json:"target_labor_cost_ratio" validate:"gte=0,lte=100"`
	Notes                   *string `json:"notes,omitempty"`
}

// RecordView pairs a stored record with its derived metrics.
type RecordView struct {
	Record  Record  `json:"record"`
	Metrics Metrics `json:"metrics"`
}
