package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurai/internal/errors"
)

const validResponse = `{
  "provider_name": "Gulf Shield Insurance",
  "plans": [
    {
      "plan_name": "Gold Family Care",
      "plan_type": "Health",
      "monthly_cost": 450,
      "annual_cost": 5400,
      "deductible": 500,
      "max_coverage": 1000000,
      "coverage_type": "Family",
      "features": ["Direct billing network", "Dental included"],
      "eligibility_criteria": "UAE residents aged 0-65",
      "exclusions": "Cosmetic procedures",
      "benefits_table": null,
      "age_based_pricing": [
        {"age_range": "0-17", "premium": 320},
        {"age_range": "18-45", "premium": 450}
      ],
      "structured_features": {
        "network_hospitals_count": 120,
        "dental_coverage": true,
        "maternity_coverage": false,
        "copay_percentage": 20,
        "room_type": "Private"
      }
    }
  ]
}`

func TestParseExtraction_ValidResponse(t *testing.T) {
	result, err := ParseExtraction(validResponse)
	require.NoError(t, err)

	assert.Equal(t, "Gulf Shield Insurance", result.ProviderName)
	assert.False(t, result.UsedFallback)
	require.Len(t, result.Plans, 1)

	plan := result.Plans[0]
	assert.Equal(t, "Gold Family Care", plan.PlanName)
	assert.Equal(t, "Health", plan.PlanType)
	require.NotNil(t, plan.MonthlyCost)
	assert.Equal(t, 450.0, *plan.MonthlyCost)
	require.Len(t, plan.AgeBandPricing, 2)
	assert.Equal(t, "0-17", plan.AgeBandPricing[0].AgeRange)
	assert.Equal(t, 320.0, plan.AgeBandPricing[0].Premium)

	require.NotNil(t, plan.StructuredFeatures)
	require.NotNil(t, plan.StructuredFeatures.NetworkHospitalsCount)
	assert.Equal(t, 120, *plan.StructuredFeatures.NetworkHospitalsCount)
	require.NotNil(t, plan.StructuredFeatures.DentalCoverage)
	assert.True(t, *plan.StructuredFeatures.DentalCoverage)
	require.NotNil(t, plan.StructuredFeatures.MaternityCoverage)
	assert.False(t, *plan.StructuredFeatures.MaternityCoverage)
	// Fields the model left out stay nil
	assert.Nil(t, plan.StructuredFeatures.OpticalCoverage)
}

func TestParseExtraction_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"

	result, err := ParseExtraction(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Gulf Shield Insurance", result.ProviderName)
}

func TestParseExtraction_ExtractsJSONFromProse(t *testing.T) {
	wrapped := "Here is the extracted data:\n" + validResponse + "\nLet me know if you need anything else."

	result, err := ParseExtraction(wrapped)
	require.NoError(t, err)
	require.Len(t, result.Plans, 1)
}

func TestParseExtraction_NoJSON(t *testing.T) {
	_, err := ParseExtraction("I could not find any insurance plans in this document.")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestParseExtraction_InvalidJSON(t *testing.T) {
	_, err := ParseExtraction(`{"provider_name": "X", "plans": [}`)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseExtraction_EmptyPlans(t *testing.T) {
	_, err := ParseExtraction(`{"provider_name": "X", "plans": []}`)
	assert.ErrorIs(t, err, ErrNoPlans)

	_, err = ParseExtraction(`{"provider_name": "X"}`)
	assert.ErrorIs(t, err, ErrNoPlans)
}

func TestParseExtraction_ProviderFallback(t *testing.T) {
	result, err := ParseExtraction(`{"provider_name": null, "plans": [{"plan_name": "Basic", "plan_type": "Health"}]}`)
	require.NoError(t, err)
	assert.Equal(t, ProviderFallbackName, result.ProviderName)
	assert.True(t, result.UsedFallback)

	// Whitespace-only counts as missing too
	result, err = ParseExtraction(`{"provider_name": "  ", "plans": [{"plan_name": "Basic", "plan_type": "Health"}]}`)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
}

func TestParseExtraction_RepairsPlanFields(t *testing.T) {
	result, err := ParseExtraction(`{"provider_name": "X", "plans": [{"plan_name": "  ", "plan_type": "Spaceship"}]}`)
	require.NoError(t, err)

	plan := result.Plans[0]
	assert.Equal(t, "Unnamed Plan", plan.PlanName)
	assert.Equal(t, "Health", plan.PlanType)
}

func TestParseExtraction_ErrorsWrapSentinels(t *testing.T) {
	_, err := ParseExtraction("no json here")
	assert.True(t, errors.Is(err, ErrNoJSONFound))
	assert.Contains(t, err.Error(), "no json here")
}

