package extraction

import (
	"encoding/json"
	"strings"

	"insurai/internal/domain/entity"
	"insurai/internal/errors"
)

// Parsing errors. Callers distinguish them to report what the model got
// wrong; all of them mean the extraction pass produced nothing usable.
var (
	// ErrNoJSONFound means the response contained no JSON object at all.
	ErrNoJSONFound = errors.New("no JSON object found in model response")
	// ErrInvalidJSON means a JSON object was found but did not parse.
	ErrInvalidJSON = errors.New("model response is not valid JSON")
	// ErrNoPlans means the JSON parsed but carried no plans.
	ErrNoPlans = errors.New("no plans found in document")
)

// ParseExtraction turns a raw model response into a validated PlanExtraction.
//
// Models wrap JSON in markdown fences or prose despite instructions, so the
// parser strips fences, then takes the outermost brace-delimited span. A
// missing provider name is replaced with ProviderFallbackName and flagged so
// that an admin-supplied override only ever replaces the placeholder.
func ParseExtraction(raw string) (*entity.PlanExtraction, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, errors.Wrap(ErrNoJSONFound, snippet(cleaned))
	}

	var result entity.PlanExtraction
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, errors.Wrap(ErrInvalidJSON, err.Error())
	}

	if len(result.Plans) == 0 {
		return nil, ErrNoPlans
	}

	if strings.TrimSpace(result.ProviderName) == "" {
		result.ProviderName = ProviderFallbackName
		result.UsedFallback = true
	}

	for i := range result.Plans {
		p := &result.Plans[i]
		p.PlanName = strings.TrimSpace(p.PlanName)
		if p.PlanName == "" {
			p.PlanName = "Unnamed Plan"
		}
		if !entity.PlanType(p.PlanType).IsValid() {
			p.PlanType = string(entity.PlanTypeHealth)
		}
	}

	return &result, nil
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
