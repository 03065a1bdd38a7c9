// Package extraction holds the prompt construction and response parsing for
// the LLM-backed document analysis. It is pure string work with no I/O, so
// both the real and the mock advisor clients can share it.
package extraction

import (
	"fmt"
	"strings"

	"insurai/internal/domain/entity"
)

// ProviderFallbackName is substituted when the model cannot identify the
// issuing provider in a document batch.
const ProviderFallbackName = "Unknown Provider"

// maxTableExcerptChars caps how much of each CSV table is inlined into the
// extraction prompt.
const maxTableExcerptChars = 2000

// AdvisorSystemPrompt is the system instruction for the advisory chatbot.
const AdvisorSystemPrompt = `You are an expert Insurance Advisor AI assistant for InsurAI, a platform that helps users in the United Arab Emirates (UAE) find the best insurance plans.

Your role is to:
1. Answer questions about insurance concepts (deductibles, premiums, coverage, exclusions, etc.)
2. Explain different types of insurance (Health, Auto, Life, Property, Travel)
3. Help users understand insurance terms and conditions
4. Provide guidance on choosing the right insurance plan
5. Explain UAE-specific insurance regulations and requirements
6. Be friendly, professional, and helpful

Important guidelines:
- Always provide accurate and helpful information
- If you're unsure about something, admit it and suggest consulting with an insurance professional
- Use simple language to explain complex insurance concepts
- Be specific about UAE insurance context when relevant
- Do not make up information about specific plans or providers
- Encourage users to compare multiple plans before making decisions
- Be concise but thorough in your responses

Context about UAE states:
- Abu Dhabi, Dubai, Sharjah, Ajman, Umm Al Quwain, Ras Al Khaimah, Fujairah
- Each emirate may have different insurance requirements and regulations`

// planExtractionPrompt is the system instruction for document analysis. The
// JSON shape it dictates must stay in lockstep with entity.ExtractedPlan.
const planExtractionPrompt = `You are an expert insurance document analyzer. Your task is to extract structured insurance plan information from the provided document.

Extract the following information:
1. Provider/Company name (look for company logos, headers, footers, or mentions in the document. If not found, set to null)
2. Plan name (if not explicitly stated, create a descriptive name based on coverage type and features)
3. Plan type (Health, Auto, Life, Property, Travel) - default to Health if unclear
4. Monthly cost (if available)
5. Annual cost (if available)
6. Deductible amount
7. Maximum coverage amount (look for "aggregate limit", "annual limit", "max coverage")
8. Coverage type (Individual, Family, etc.)
9. Key features (as an array of strings) - include hospitals, benefits, perks, network coverage
10. Eligibility criteria
11. Exclusions
12. Benefits table (if present in the document)
13. Age-based pricing (if present in tables or CSV data)

STRUCTURED FEATURE EXTRACTION (CRITICAL):
Extract these specific features for comparison purposes:
- network_hospitals_count: Number of hospitals in network (integer or null)
- network_type: Type of network (e.g., "Network", "PPO", "HMO", "Direct Billing", "Reimbursement") or null
- uae_coverage: Does the plan cover all UAE states/emirates? (true/false/null)
- gcc_coverage: Does the plan cover GCC countries? (true/false/null)
- international_coverage: Does the plan have international coverage? (true/false/null)
- outpatient_coverage: Is outpatient covered? (true/false/null)
- inpatient_coverage: Is inpatient covered? (true/false/null)
- dental_coverage: Is dental covered? (true/false/null)
- optical_coverage: Is optical/vision covered? (true/false/null)
- maternity_coverage: Is maternity covered? (true/false/null)
- pre_existing_conditions: Are pre-existing conditions covered? (true/false/null)
- pharmacy_coverage: Is pharmacy/medication covered? (true/false/null)
- emergency_coverage: Is emergency services covered? (true/false/null)
- ambulance_service: Is ambulance service included? (true/false/null)
- preventive_care: Is preventive/wellness care included? (true/false/null)
- chronic_conditions_covered: Are chronic conditions covered? (true/false/null)
- mental_health_coverage: Is mental health covered? (true/false/null)
- physiotherapy_coverage: Is physiotherapy covered? (true/false/null)
- alternative_medicine: Is alternative medicine covered? (true/false/null)
- waiting_period_days: Waiting period in days (integer or null)
- copay_percentage: Co-payment percentage (integer 0-100 or null)
- room_type: Type of room covered (e.g., "Private", "Semi-Private", "Shared", "Ward") or null
- cashless_claims: Does the plan support cashless claims? (true/false/null)

CRITICAL INSTRUCTIONS FOR TABLES:
- If you see a benefits table, extract ALL rows and present them clearly in the features array
- For age-based pricing tables, extract EVERY age band with its corresponding premium
- Format pricing as: "Age [range]: [premium] AED" for each age band
- Include table headers and all data rows
- If tables are in CSV format (provided separately), parse them completely
- Look for hospital network lists and count them

CRITICAL: Return ONLY valid JSON with NO markdown formatting, NO code blocks, NO explanations.

Return the data in EXACTLY this JSON format:
{
  "provider_name": "string or null",
  "plans": [
    {
      "plan_name": "string",
      "plan_type": "Health",
      "monthly_cost": number or null,
      "annual_cost": number or null,
      "deductible": number or null,
      "max_coverage": number or null,
      "coverage_type": "string or null",
      "features": ["feature1", "feature2", "feature3"],
      "eligibility_criteria": "string or null",
      "exclusions": "string or null",
      "benefits_table": "string or null",
      "age_based_pricing": [
        {"age_range": "0-17", "premium": 320},
        {"age_range": "18-45", "premium": 320}
      ],
      "structured_features": {
        "network_hospitals_count": number or null,
        "network_type": "string or null",
        "uae_coverage": boolean or null,
        "gcc_coverage": boolean or null,
        "international_coverage": boolean or null,
        "outpatient_coverage": boolean or null,
        "inpatient_coverage": boolean or null,
        "dental_coverage": boolean or null,
        "optical_coverage": boolean or null,
        "maternity_coverage": boolean or null,
        "pre_existing_conditions": boolean or null,
        "pharmacy_coverage": boolean or null,
        "emergency_coverage": boolean or null,
        "ambulance_service": boolean or null,
        "preventive_care": boolean or null,
        "chronic_conditions_covered": boolean or null,
        "mental_health_coverage": boolean or null,
        "physiotherapy_coverage": boolean or null,
        "alternative_medicine": boolean or null,
        "waiting_period_days": number or null,
        "copay_percentage": number or null,
        "room_type": "string or null",
        "cashless_claims": boolean or null
      }
    }
  ]
}

Important:
- If information is not available, use null
- Extract all monetary values as numbers (without currency symbols, commas, or text like "AED")
- For premium tables with multiple age bands, include BOTH the base premium in annual_cost AND the complete age_based_pricing array
- Extract EVERY benefit from tables - coverage items, limits, deductibles, copays, waiting periods
- For structured_features, use true/false for boolean fields, numbers for counts/percentages, and strings for descriptive fields
- Look carefully in the document for mentions of coverage areas, hospital networks, and specific benefits
- For benefits tables, create detailed feature entries like "Benefit: [name] - Coverage: [amount] - Copay: [amount]"
- If CSV tables are provided, parse them row by row and include all information
- Be thorough and extract all distinct plans found in the document
- For features, extract key benefits, coverage details, hospital networks, and special notes
- Ensure the JSON is valid and properly formatted
- If multiple distinct plans are in the document, include all of them in the plans array
- Return ONLY the JSON object, nothing else
`

// BuildExtractionPrompt assembles the full prompt for one extraction pass:
// the system instruction, optional filename and table excerpts, then the
// combined document text. Each table is excerpted to keep the prompt within
// a sane size; a truncation marker tells the model the excerpt is partial.
func BuildExtractionPrompt(fileName, text string, tables []entity.DocumentTable) string {
	var b strings.Builder
	b.WriteString(planExtractionPrompt)
	b.WriteString("\n\n")

	if fileName != "" {
		fmt.Fprintf(&b, "Filename: %s\n", fileName)
	}
	if len(tables) > 0 {
		b.WriteString("\n-- TABLES (CSV) INCLUDED BELOW --\n")
		for _, t := range tables {
			fmt.Fprintf(&b, "\n[Sheet: %s]\n", t.SheetName)
			csv := t.CSV
			if len(csv) > maxTableExcerptChars {
				b.WriteString(csv[:maxTableExcerptChars])
				b.WriteString("\n... (truncated)")
			} else {
				b.WriteString(csv)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n-- END TABLES --\n\n")
	}

	b.WriteString("Document Content:\n")
	b.WriteString(text)
	b.WriteString("\n\nExtract the insurance plan data and return ONLY valid JSON, no markdown formatting:")
	return b.String()
}

// CombineDocuments merges the text of several extracted files into one
// document for a single extraction pass, separating them with a banner
// naming the source file.
func CombineDocuments(names []string, contents []*entity.DocumentContent) (string, []entity.DocumentTable) {
	var b strings.Builder
	var tables []entity.DocumentTable
	for i, c := range contents {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "=== FILE: %s ===\n\n", names[i])
		b.WriteString(c.Text)
		for _, t := range c.Tables {
			t.SourceFile = names[i]
			tables = append(tables, t)
		}
	}
	return b.String(), tables
}
