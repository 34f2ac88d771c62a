package entity

// RegionalCost represents the spend attributed to one AWS region.
type RegionalCost struct {
	Region     string  `json:"region"`
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	Percentage float64 `json:"percentage"`
}
