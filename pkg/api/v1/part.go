package v1

// Part is the wire representation of a part.
type Part struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Description  string `json:"description"`
	WeightOunces int    `json:"weight_ounces"`
	IsActive     bool   `json:"is_active"`
}

// PartRequest is the body of create, replace and partial update requests.
// Absent keys decode to nil.
type PartRequest struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	Description  *string `json:"description"`
	WeightOunces *int    `json:"weight_ounces"`
	IsActive     *bool   `json:"is_active"`
}
