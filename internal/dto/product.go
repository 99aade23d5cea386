package dto

type ProductDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Strain      *string  `json:"strain"`
	WeightLabel string   `json:"weightLabel,omitempty"`
	THCPercent  *float64 `json:"thcPercent,omitempty"`
	CBDPercent  *float64 `json:"cbdPercent,omitempty"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

type SearchProductsRequest struct {
	Search       string
	Category     string
	Strain       string
	FeaturedOnly bool
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
	Count    int          `json:"count"`
}
