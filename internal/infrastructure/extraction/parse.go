package extraction

import (
	"encoding/json"
	"strings"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/rotisserie/eris"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var resultSchema = jsonschema.MustCompileString("extraction_result.json", resultSchemaJSON)

// stripFences removes a surrounding markdown code fence and any prose around
// the outermost JSON object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}

// parseResult turns a backend reply into an ExtractionResult. Loose fields are
// normalized before schema validation: strings are trimmed, unknown units
// become "u", missing optional strings become empty.
func parseResult(raw string) (entities.ExtractionResult, error) {
	body := stripFences(raw)
	if body == "" {
		return entities.ExtractionResult{}, eris.New("empty response")
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return entities.ExtractionResult{}, eris.Wrap(err, "response is not a JSON object")
	}
	normalizeDocument(doc)

	if err := resultSchema.Validate(doc); err != nil {
		return entities.ExtractionResult{}, eris.Wrap(err, "response does not match the result schema")
	}

	clean, err := json.Marshal(doc)
	if err != nil {
		return entities.ExtractionResult{}, eris.Wrap(err, "re-encode response")
	}
	var result entities.ExtractionResult
	if err := json.Unmarshal(clean, &result); err != nil {
		return entities.ExtractionResult{}, eris.Wrap(err, "decode extraction result")
	}
	if result.Products == nil {
		result.Products = []entities.ExtractedCandidate{}
	}
	return result, nil
}

func normalizeDocument(doc map[string]any) {
	if _, ok := doc["multipleModelsFound"]; !ok {
		if products, ok := doc["products"].([]any); ok {
			doc["multipleModelsFound"] = len(products) > 1
		}
	}
	products, ok := doc["products"].([]any)
	if !ok {
		return
	}
	for _, p := range products {
		m, ok := p.(map[string]any)
		if !ok {
			continue
		}
		// Trimmed before validation so a blank name fails minLength.
		for _, key := range []string{"name", "brand", "description", "specDetails", "category"} {
			if v, ok := m[key].(string); ok {
				m[key] = strings.TrimSpace(v)
			}
		}
		for _, key := range []string{"brand", "description"} {
			if v, ok := m[key]; !ok || v == nil {
				m[key] = ""
			}
		}
		for _, key := range []string{"specDetails", "category"} {
			if v, ok := m[key]; ok && v == nil {
				delete(m, key)
			}
		}
		unit, _ := m["suggestedUnit"].(string)
		m["suggestedUnit"] = string(entities.ParseUnit(unit))
	}
}
