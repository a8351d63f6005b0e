package domain

import "time"

type FoodItem struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotelId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceItem struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotelId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	EstimatedTime string    `json:"estimatedTime"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ComplaintItem struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotelId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Severity    Priority  `json:"severity"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
