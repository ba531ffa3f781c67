package models

// PricingEntry is the average listed price of one market category
type PricingEntry struct {
	Category string     `json:"_id"`
	AvgPrice PriceValue `json:"avg_price"`
	Count    int        `json:"count"`
}

// DemandEntry is one of the most ordered products
type DemandEntry struct {
	Product string  `json:"_id"`
	Orders  int     `json:"orders"`
	Qty     float64 `json:"qty"`
}

// SupplyEntry is the available stock of one supply segment
type SupplyEntry struct {
	Category  string  `json:"_id"`
	Available float64 `json:"available"`
	Items     int     `json:"items"`
}

// Greeting is the backend hello message shown in the page header
type Greeting struct {
	Message string `json:"message"`
}
