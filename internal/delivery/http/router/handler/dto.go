package handler

import (
	"time"

	"insurai/internal/domain/entity"
	"insurai/internal/usecase"
)

// View types shape the JSON the API returns. Entities stay free of
// transport tags; the mapping lives here.

type stateView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type userView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	StateID   uint       `json:"state_id"`
	State     *stateView `json:"state,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type providerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type planView struct {
	ID                  string                     `json:"id"`
	Provider            *providerView              `json:"provider,omitempty"`
	State               *stateView                 `json:"state,omitempty"`
	PlanName            string                     `json:"plan_name"`
	PlanType            string                     `json:"plan_type"`
	MonthlyCost         *float64                   `json:"monthly_cost"`
	AnnualCost          *float64                   `json:"annual_cost"`
	Deductible          *float64                   `json:"deductible"`
	MaxCoverage         *float64                   `json:"max_coverage"`
	CoverageType        *string                    `json:"coverage_type"`
	Features            []string                   `json:"features"`
	EligibilityCriteria *string                    `json:"eligibility_criteria"`
	Exclusions          *string                    `json:"exclusions"`
	BenefitsTable       *string                    `json:"benefits_table"`
	AgeBandPricing      []entity.AgeBandPrice      `json:"age_based_pricing"`
	StructuredFeatures  *entity.StructuredFeatures `json:"structured_features"`
	DocumentSource      string                     `json:"document_source"`
	IsActive            bool                       `json:"is_active"`
	CreatedAt           time.Time                  `json:"created_at"`
}

type chatEntryView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionView struct {
	SessionID    string    `json:"session_id"`
	MessageCount int64     `json:"message_count"`
	LastActivity time.Time `json:"last_activity"`
}

type documentResultView struct {
	File   string `json:"file"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func toStateView(s *entity.State) *stateView {
	if s == nil {
		return nil
	}

	return &stateView{ID: s.ID, Name: s.Name, Code: s.Code}
}

func toUserView(u *entity.User) *userView {
	return &userView{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		StateID:   u.StateID,
		State:     toStateView(u.State),
		CreatedAt: u.CreatedAt,
	}
}

func toProviderView(p *entity.Provider) *providerView {
	if p == nil {
		return nil
	}

	return &providerView{ID: p.ID.String(), Name: p.Name}
}

func toPlanView(p *entity.Plan) *planView {
	return &planView{
		ID:                  p.ID.String(),
		Provider:            toProviderView(p.Provider),
		State:               toStateView(p.State),
		PlanName:            p.Name,
		PlanType:            p.Type.String(),
		MonthlyCost:         p.MonthlyCost,
		AnnualCost:          p.AnnualCost,
		Deductible:          p.Deductible,
		MaxCoverage:         p.MaxCoverage,
		CoverageType:        p.CoverageType,
		Features:            p.Features,
		EligibilityCriteria: p.EligibilityCriteria,
		Exclusions:          p.Exclusions,
		BenefitsTable:       p.BenefitsTable,
		AgeBandPricing:      p.AgeBandPricing,
		StructuredFeatures:  p.StructuredFeatures,
		DocumentSource:      p.DocumentSource,
		IsActive:            p.IsActive,
		CreatedAt:           p.CreatedAt,
	}
}

func toPlanViews(plans []*entity.Plan) []*planView {
	views := make([]*planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, toPlanView(p))
	}

	return views
}

func toChatEntryViews(entries []*entity.ChatEntry) []*chatEntryView {
	views := make([]*chatEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &chatEntryView{
			ID:        e.ID.String(),
			SessionID: e.SessionID,
			Message:   e.Message,
			Response:  e.Response,
			CreatedAt: e.CreatedAt,
		})
	}

	return views
}

func toDocumentResultViews(details []usecase.DocumentResult) []documentResultView {
	views := make([]documentResultView, 0, len(details))
	for _, d := range details {
		views = append(views, documentResultView{File: d.File, Status: d.Status, Error: d.Error})
	}

	return views
}
