package llm

import "strings"

// BuildSystemPrompt composes the instruction sent alongside the bill
// image. The category enumeration is documented here and only here; the
// decode path does not re-check it.
func BuildSystemPrompt(categories []string) string {
	return "You are a bill analysis assistant. Analyze the bill image and return ONLY a valid JSON object " +
		"with no extra text, no markdown, no code blocks, using this exact structure: " +
		`{"vendor_name": string, "category": one of [` + strings.Join(categories, ", ") + `], ` +
		`"date": "YYYY-MM-DD or null", "total_amount": number or null}. ` +
		"Return ONLY the JSON object, nothing else."
}

// BuildUserPrompt appends the per-request ask to the system instruction.
func BuildUserPrompt(systemPrompt string) string {
	return systemPrompt + " Please analyze this bill image and extract the vendor name, category, date, and total amount."
}
