package llm

import "github.com/santhosh-tekuri/jsonschema/v5"

// extractionSchema is a deliberately loose shape check on the recovered
// object: every field is optional and category is any string, so an
// unrecognized category still validates. It exists to reject replies
// where the model returned the wrong types entirely (e.g. a string
// total_amount), which the typed decode could not represent.
var extractionSchema = jsonschema.MustCompileString("extraction.json", `{
	"type": "object",
	"properties": {
		"vendor_name":  {"type": ["string", "null"]},
		"category":     {"type": ["string", "null"]},
		"date":         {"type": ["string", "null"]},
		"total_amount": {"type": ["number", "null"]}
	}
}`)
