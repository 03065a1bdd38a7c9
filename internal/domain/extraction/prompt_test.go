package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurai/internal/domain/entity"
)

func TestBuildExtractionPrompt_IncludesSections(t *testing.T) {
	tables := []entity.DocumentTable{
		{SheetName: "Pricing", CSV: "age,premium\n0-17,320\n18-45,450\n"},
	}

	prompt := BuildExtractionPrompt("gulf_health.pdf", "Gold Family Care plan details", tables)

	assert.Contains(t, prompt, "Filename: gulf_health.pdf")
	assert.Contains(t, prompt, "-- TABLES (CSV) INCLUDED BELOW --")
	assert.Contains(t, prompt, "[Sheet: Pricing]")
	assert.Contains(t, prompt, "0-17,320")
	assert.Contains(t, prompt, "Document Content:\nGold Family Care plan details")
	assert.Contains(t, prompt, `"provider_name": "string or null"`)
}

func TestBuildExtractionPrompt_TruncatesLongTables(t *testing.T) {
	longCSV := strings.Repeat("age,premium\n0-17,320\n", 500)
	tables := []entity.DocumentTable{{SheetName: "Pricing", CSV: longCSV}}

	prompt := BuildExtractionPrompt("plans.xlsx", "body", tables)

	assert.Contains(t, prompt, "... (truncated)")
	// The inlined excerpt stays at the cap, not the full table
	assert.Less(t, strings.Index(prompt, "... (truncated)"), len(prompt))
	assert.NotContains(t, prompt, longCSV)
}

func TestBuildExtractionPrompt_NoTables(t *testing.T) {
	prompt := BuildExtractionPrompt("", "just text", nil)

	assert.NotContains(t, prompt, "Filename:")
	assert.NotContains(t, prompt, "-- TABLES")
	assert.Contains(t, prompt, "Document Content:\njust text")
}

func TestCombineDocuments(t *testing.T) {
	contents := []*entity.DocumentContent{
		{Text: "first body"},
		{Text: "second body", Tables: []entity.DocumentTable{{SheetName: "Rates", CSV: "a,b\n"}}},
	}

	text, tables := CombineDocuments([]string{"one.pdf", "two.xlsx"}, contents)

	assert.Contains(t, text, "=== FILE: one.pdf ===\n\nfirst body")
	assert.Contains(t, text, "=== FILE: two.xlsx ===\n\nsecond body")
	assert.Less(t, strings.Index(text, "one.pdf"), strings.Index(text, "two.xlsx"))

	require.Len(t, tables, 1)
	assert.Equal(t, "Rates", tables[0].SheetName)
	assert.Equal(t, "two.xlsx", tables[0].SourceFile)
}
