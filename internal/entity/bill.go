package entity

import "time"

// Bill represents a persisted expense record for data transfer between layers.
type Bill struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Vendor    string    `json:"vendor"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	ImagePath string    `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
}
