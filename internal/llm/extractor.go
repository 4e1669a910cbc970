package llm

import (
	"context"

	"billtracker/constants"
	"billtracker/internal/entity"
)

// ManualEntryMessage is surfaced when the model reply cannot be parsed.
const ManualEntryMessage = "Could not parse bill data. Please fill in the details manually."

// BillExtractor is the interface the upload handler depends on. The
// contract is total: implementations always return a well-formed result
// and fold every failure (transport, timeout, bad reply) into
// ExtractionSuccess=false with a caller-facing Error.
type BillExtractor interface {
	ExtractBill(ctx context.Context, imagePath string) entity.ExtractionResult
}

// Failure builds an unsuccessful ExtractionResult carrying message.
func Failure(message string) entity.ExtractionResult {
	return entity.ExtractionResult{
		Category:          string(constants.DefaultCategory),
		ExtractionSuccess: false,
		Error:             message,
	}
}
