package models

type ShippingCode struct {
	UUID int    `json:"uuid"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type City struct {
	UUID      int     `json:"uuid"`
	Code      string  `json:"code"`
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ShippingQuote struct {
	Distance float64 `json:"distance"`
	Cost     float64 `json:"cost"`
}

// ShippingSelection is the body posted when the shopper confirms shipping.
type ShippingSelection struct {
	Distance float64 `json:"distance"`
	Cost     float64 `json:"cost"`
	Location string  `json:"location"`
}
