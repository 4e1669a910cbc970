package llm

import (
	"encoding/json"
	"strings"

	"billtracker/constants"
	"billtracker/internal/entity"
)

type extractionPayload struct {
	VendorName  *string  `json:"vendor_name"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	TotalAmount *float64 `json:"total_amount"`
}

// ParseResponse recovers an ExtractionResult from the raw text of a
// model reply. Models wrap the JSON in markdown fences or surround it
// with prose, so the object is dug out before decoding. The function is
// total: every failure mode ends in ExtractionSuccess=false, never in an
// error or panic.
func ParseResponse(raw string) entity.ExtractionResult {
	if raw == "" {
		return Failure("Model returned empty response")
	}

	text := strings.TrimSpace(raw)

	if strings.Contains(text, "```") {
		text = stripCodeFences(text)
	}

	// Even without fences the object may be buried in prose; slice to the
	// outermost brace pair.
	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return Failure(ManualEntryMessage)
	}
	if err := extractionSchema.Validate(decoded); err != nil {
		return Failure(ManualEntryMessage)
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Failure(ManualEntryMessage)
	}

	category := string(constants.DefaultCategory)
	if payload.Category != nil {
		// Unrecognized values pass through as-is; only the prompt documents
		// the enumeration.
		category = *payload.Category
	}

	return entity.ExtractionResult{
		VendorName:        payload.VendorName,
		Category:          category,
		Date:              payload.Date,
		TotalAmount:       payload.TotalAmount,
		ExtractionSuccess: true,
	}
}

// stripCodeFences keeps only the lines between the first fence marker
// and the next one, dropping surrounding prose. If no complete block is
// found the text is returned unchanged.
func stripCodeFences(text string) string {
	var jsonLines []string
	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		fence := strings.HasPrefix(line, "```")
		if fence && !inBlock {
			inBlock = true
			continue
		}
		if fence && inBlock {
			break
		}
		if inBlock {
			jsonLines = append(jsonLines, line)
		}
	}
	if len(jsonLines) == 0 {
		return text
	}
	return strings.Join(jsonLines, "\n")
}
