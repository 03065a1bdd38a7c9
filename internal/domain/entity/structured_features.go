package entity

// StructuredFeatures is the fixed-shape map of comparison attributes the
// extractor pulls out of free text. Every field is independently nullable:
// nil means the document did not state the attribute, which is distinct
// from an explicit false or zero.
//
// The JSON tags are part of the extraction contract with the LLM and of the
// stored representation; renaming one silently drops the attribute.
type StructuredFeatures struct {
	NetworkHospitalsCount    *int    `json:"network_hospitals_count"`
	NetworkType              *string `json:"network_type"`
	UAECoverage              *bool   `json:"uae_coverage"`
	GCCCoverage              *bool   `json:"gcc_coverage"`
	InternationalCoverage    *bool   `json:"international_coverage"`
	OutpatientCoverage       *bool   `json:"outpatient_coverage"`
	InpatientCoverage        *bool   `json:"inpatient_coverage"`
	DentalCoverage           *bool   `json:"dental_coverage"`
	OpticalCoverage          *bool   `json:"optical_coverage"`
	MaternityCoverage        *bool   `json:"maternity_coverage"`
	PreExistingConditions    *bool   `json:"pre_existing_conditions"`
	PharmacyCoverage         *bool   `json:"pharmacy_coverage"`
	EmergencyCoverage        *bool   `json:"emergency_coverage"`
	AmbulanceService         *bool   `json:"ambulance_service"`
	PreventiveCare           *bool   `json:"preventive_care"`
	ChronicConditionsCovered *bool   `json:"chronic_conditions_covered"`
	MentalHealthCoverage     *bool   `json:"mental_health_coverage"`
	PhysiotherapyCoverage    *bool   `json:"physiotherapy_coverage"`
	AlternativeMedicine      *bool   `json:"alternative_medicine"`
	WaitingPeriodDays        *int    `json:"waiting_period_days"`
	CopayPercentage          *int    `json:"copay_percentage"`
	RoomType                 *string `json:"room_type"`
	CashlessClaims           *bool   `json:"cashless_claims"`
}
