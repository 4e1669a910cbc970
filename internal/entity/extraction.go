package entity

// ExtractionResult is the normalized outcome of one extraction attempt.
// It is never persisted; the client reviews it and submits a Bill.
// When ExtractionSuccess is false, Error carries a caller-facing message.
type ExtractionResult struct {
	VendorName        *string  `json:"vendor_name"`
	Category          string   `json:"category"`
	Date              *string  `json:"date"`
	TotalAmount       *float64 `json:"total_amount"`
	ExtractionSuccess bool     `json:"extraction_success"`
	Error             string   `json:"error,omitempty"`
}
