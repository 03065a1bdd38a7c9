package entity

// PlanExtraction is the validated result of one LLM extraction pass over a
// batch of documents. The JSON tags define the contract the model is
// instructed to produce.
type PlanExtraction struct {
	ProviderName string          `json:"provider_name"`
	Plans        []ExtractedPlan `json:"plans"`

	// UsedFallback is true when the model did not identify a provider and
	// the "Unknown Provider" placeholder was substituted. An admin-supplied
	// provider name may only override the placeholder, never a name the
	// model actually found.
	UsedFallback bool `json:"-"`
}

// ExtractedPlan is one plan record as produced by the LLM, before it is
// turned into a persisted Plan.
type ExtractedPlan struct {
	PlanName            string              `json:"plan_name"`
	PlanType            string              `json:"plan_type"`
	MonthlyCost         *float64            `json:"monthly_cost"`
	AnnualCost          *float64            `json:"annual_cost"`
	Deductible          *float64            `json:"deductible"`
	MaxCoverage         *float64            `json:"max_coverage"`
	CoverageType        *string             `json:"coverage_type"`
	Features            []string            `json:"features"`
	EligibilityCriteria *string             `json:"eligibility_criteria"`
	Exclusions          *string             `json:"exclusions"`
	BenefitsTable       *string             `json:"benefits_table"`
	AgeBandPricing      []AgeBandPrice      `json:"age_based_pricing"`
	StructuredFeatures  *StructuredFeatures `json:"structured_features"`
}

// ChatTurn is one prior exchange handed to the advisor as conversation
// context, oldest first.
type ChatTurn struct {
	Message  string
	Response string
}
