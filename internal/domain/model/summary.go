package model

// SkuSummaryRow is one aggregated row of the per-SKU project rollup.
//
// @Description Aggregated quantity and price for a single SKU
type SkuSummaryRow struct {
	SKU         string  `json:"sku" example:"HD4001"`
	ProductName string  `json:"product_name" example:"1-Way Switch"`
	Quantity    int     `json:"quantity" example:"3"`
	UnitPrice   float64 `json:"unit_price" example:"12.50"`
	TotalPrice  float64 `json:"total_price" example:"37.50"`
	// IsFrameOrAdapter marks rows that originate from derived auxiliary parts.
	IsFrameOrAdapter bool `json:"is_frame_or_adapter,omitempty"`
} // @name SkuSummaryRow

// SkuSummary is the complete rollup plus grand total.
//
// @Description Per-SKU project summary with grand total
type SkuSummary struct {
	Rows       []SkuSummaryRow `json:"rows"`
	GrandTotal float64         `json:"grand_total" example:"125.75"`
} // @name SkuSummary
