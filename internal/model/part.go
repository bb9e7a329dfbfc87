package model

// Part is a physical inventory part. WeightOunces is stored as a 32-bit
// INTEGER column and text columns refuse NUL bytes.
type Part struct {
	// System-assigned, immutable identifier.
	ID           int64
	Name         string `json:"name" validate:"required,max=150,nonul"`
	SKU          string `json:"sku" validate:"max=30,nonul"`
	Description  string `json:"description" validate:"max=1024,nonul"`
	WeightOunces int    `json:"weight_ounces" validate:"min=-2147483648,max=2147483647"`
	IsActive     bool   `json:"is_active"`
}

// PartFields is a create/update payload. A nil field was not supplied.
type PartFields struct {
	Name         *string
	SKU          *string
	Description  *string
	WeightOunces *int
	IsActive     *bool
}

// Missing returns the json names of the fields that were not supplied.
func (f PartFields) Missing() []string {
	var missing []string
	if f.Name == nil {
		missing = append(missing, "name")
	}
	if f.SKU == nil {
		missing = append(missing, "sku")
	}
	if f.Description == nil {
		missing = append(missing, "description")
	}
	if f.WeightOunces == nil {
		missing = append(missing, "weight_ounces")
	}
	if f.IsActive == nil {
		missing = append(missing, "is_active")
	}
	return missing
}

// Apply copies every supplied field onto p.
func (f PartFields) Apply(p *Part) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.SKU != nil {
		p.SKU = *f.SKU
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.WeightOunces != nil {
		p.WeightOunces = *f.WeightOunces
	}
	if f.IsActive != nil {
		p.IsActive = *f.IsActive
	}
}
