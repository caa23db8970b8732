package extractor

// IdentitySchema returns the JSON schema the vision model is asked to
// conform to. Each identity field expands into a value/bbox/confidence
// triple; document_type, full_name, document_number, and extracted_text
// are required so the model always attempts them.
func IdentitySchema() map[string]interface{} {
	properties := map[string]interface{}{
		"document_type": map[string]interface{}{
			"type":        "string",
			"description": "Type of document identified (passport, driver_license, etc.)",
		},
		"extracted_text": map[string]interface{}{
			"type":        "string",
			"description": "All text extracted from the document - extract complete unmasked text, do not use asterisks or stars",
		},
	}

	fields := []struct {
		name string
		desc string
	}{
		{"full_name", "Full name as it appears on the document"},
		{"date_of_birth", "Date of birth in YYYY-MM-DD format"},
		{"document_number", "Document number (passport number, license number, etc.)"},
		{"expiry_date", "Document expiry date in YYYY-MM-DD format"},
		{"issue_date", "Document issue date in YYYY-MM-DD format"},
		{"nationality", "Nationality as shown on document"},
		{"address", "Address if available on document"},
	}
	for _, f := range fields {
		properties[f.name] = map[string]interface{}{
			"type":        "string",
			"description": f.desc + " - extract complete unmasked value, do not use asterisks or stars",
		}
		properties[f.name+"_bbox"] = map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"description": "Bounding box coordinates [x1, y1, x2, y2] for " + f.name + " field",
		}
		properties[f.name+"_confidence"] = map[string]interface{}{
			"type":        "number",
			"description": "Confidence (0-1) for " + f.name + " extraction",
		}
	}

	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required": []string{
			"document_type",
			"full_name",
			"document_number",
			"extracted_text",
		},
	}
}
