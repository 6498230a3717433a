package models

type Product struct {
	ID          FlexibleID `json:"_id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	InStock     int        `json:"instock"`
	Categories  []string   `json:"categories"`
}

type Rating struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

type ProductView struct {
	Product Product `json:"product"`
	Rating  Rating  `json:"rating"`
}

type RateResult struct {
	SKU     string `json:"sku"`
	Vote    int    `json:"vote"`
	Message string `json:"message"`
}
