package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/service"
)

// mockAdvisorClient is a deterministic stand-in for the hosted model. It
// fabricates a single plausible plan per batch so the rest of the ingestion
// pipeline can be exercised without network access or an API key.
type mockAdvisorClient struct{}

// NewMockAdvisorClient is the constructor for mockAdvisorClient.
func NewMockAdvisorClient() service.AdvisorClient {
	return &mockAdvisorClient{}
}

var maxCoveragePattern = regexp.MustCompile(`(?i)max\s*coverage\s*[:\-]?\s*([0-9,]+)`)

// ExtractPlans fabricates one Health plan. The provider name comes from the
// first token of the filename, a "max coverage" figure is picked up from the
// document text when present, and CSV tables are summarised into an
// age-based pricing feature line.
func (c *mockAdvisorClient) ExtractPlans(_ context.Context, fileName string, text string, tables []entity.DocumentTable) (*entity.PlanExtraction, error) {
	provider := "Mock Provider"
	if fileName != "" {
		if token := splitFileToken(fileName); token != "" {
			provider = token
		}
	}

	var features []string
	if len(tables) > 0 {
		features = append(features, mockTableFeature(tables[0]))
	}
	if len(features) == 0 {
		features = []string{"Standard benefits as listed in document"}
	}

	var maxCoverage *float64
	if match := maxCoveragePattern.FindStringSubmatch(text); match != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64); err == nil {
			maxCoverage = &v
		}
	}

	coverageType := "Family"

	return &entity.PlanExtraction{
		ProviderName: provider,
		Plans: []entity.ExtractedPlan{{
			PlanName:     fmt.Sprintf("Mock Plan from %s", provider),
			PlanType:     entity.PlanTypeHealth.String(),
			MaxCoverage:  maxCoverage,
			CoverageType: &coverageType,
			Features:     features,
		}},
	}, nil
}

// Chat echoes the question back, prefixed so tests can assert the mock path.
func (c *mockAdvisorClient) Chat(_ context.Context, message string, _ []entity.ChatTurn) (string, error) {
	return "Mock reply to: " + message, nil
}

// splitFileToken takes the leading token of a filename, splitting on dots,
// underscores, and dashes.
func splitFileToken(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// mockTableFeature renders the first table as a readable age-band pricing
// line, mirroring what the real model is asked to produce.
func mockTableFeature(table entity.DocumentTable) string {
	rows := strings.Split(strings.TrimSpace(table.CSV), "\n")
	if len(rows) < 2 {
		return "Age-based pricing available in attached table"
	}

	lines := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cols := strings.Split(row, ",")
		if len(cols) == 0 || strings.TrimSpace(cols[0]) == "" {
			continue
		}
		premium := ""
		if len(cols) > 1 {
			premium = strings.TrimSpace(cols[1])
		}
		lines = append(lines, fmt.Sprintf("%s: %s", strings.TrimSpace(cols[0]), premium))
	}
	if len(lines) == 0 {
		return "Age-based pricing available in attached table"
	}

	return "Age-based pricing: " + strings.Join(lines, " | ")
}
