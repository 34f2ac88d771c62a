package entity

// ServiceCost represents the monthly cost of a single AWS service.
type ServiceCost struct {
	Service    string  `json:"service"`
	Cost       float64 `json:"cost"`
	Percentage float64 `json:"percentage"`
	Change     float64 `json:"change"`
}
