package entity

// State is one of the seven UAE emirates. States are fixed reference data
// seeded at startup and referenced by users and plans; they are never
// created or deleted through the API.
type State struct {
	ID   uint   // Small stable identifier (1..7), part of the public API surface.
	Name string // Full emirate name, e.g. "Dubai".
	Code string // Short code, e.g. "DU".
}
