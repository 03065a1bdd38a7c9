package entity

// PlanType classifies an insurance plan.
type PlanType string

const (
	PlanTypeHealth   PlanType = "Health"
	PlanTypeAuto     PlanType = "Auto"
	PlanTypeLife     PlanType = "Life"
	PlanTypeProperty PlanType = "Property"
	PlanTypeTravel   PlanType = "Travel"
)

// PlanTypes lists every valid plan type, in display order.
var PlanTypes = []PlanType{PlanTypeHealth, PlanTypeAuto, PlanTypeLife, PlanTypeProperty, PlanTypeTravel}

// String returns the string representation of the PlanType.
func (t PlanType) String() string {
	return string(t)
}

// IsValid checks if the PlanType is a valid value.
func (t PlanType) IsValid() bool {
	switch t {
	case PlanTypeHealth, PlanTypeAuto, PlanTypeLife, PlanTypeProperty, PlanTypeTravel:
		return true
	default:
		return false
	}
}
