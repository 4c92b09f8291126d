package daily

// UpsertRequest carries one day of figures from the input form.
type UpsertRequest struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Sales         int64  `json:"sales" validate:"gte=0"`
	FoodSales     int64  `json:"food_sales" validate:"gte=0"`
	BeverageSales int64  `json:"beverage_sales" validate:"gte=0"`
	FoodCost      int64  `json:"food_cost" validate:"gte=0"`
	BeverageCost  int64  `json:"beverage_cost" validate:"gte=0"`
	LaborCost     int64  `json:"labor_cost" validate:"gte=0"`
	OtherCost     int64  `json:"other_cost" validate:"gte=0"`
	CustomerCount int64  `json:"customer_count" validate:"gte=0"`
}

// RecordView pairs a stored record with its derived metrics.
type RecordView struct {
	Record  Record  `json:"record"`
	Metrics Metrics `json:"metrics"`
}
