package models

type MenuItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"` // whole rupees
	Category     string `json:"category"`
	Image        string `json:"image,omitempty"`
	IsVeg        bool   `json:"is_veg"`
	IsBestseller bool   `json:"is_bestseller"`
}

type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

type MenuResponse struct {
	Categories []MenuCategory `json:"categories"`
}
