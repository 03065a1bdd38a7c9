package handler

import (
	"net/http"
	"strconv"

	"insurai/internal/delivery/http/middleware"
	"insurai/internal/delivery/http/response"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for the plan browsing endpoints.
type PlanHandler struct {
	uc usecase.PlanUsecase
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

type planListResponse struct {
	Plans      []*planView    `json:"plans"`
	Pagination paginationView `json:"pagination"`
}

type paginationView struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// Search lists active plans matching the query filters, cheapest first.
// Without an explicit state filter the user's home emirate applies.
func (h *PlanHandler) Search(c echo.Context) error {
	input := usecase.SearchPlansInput{
		PlanType:     c.QueryParam("type"),
		CoverageType: c.QueryParam("coverage_type"),
	}

	if raw := c.QueryParam("state_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "state_id must be a number")
		}
		input.StateID = uint(id)
	}

	var parseErr error
	input.MaxDeductible = floatQueryParam(c, "max_deductible", &parseErr)
	input.MaxCost = floatQueryParam(c, "max_cost", &parseErr)
	input.MinCoverage = floatQueryParam(c, "min_coverage", &parseErr)
	if parseErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", parseErr.Error())
	}

	if raw := c.QueryParam("limit"); raw != "" {
		input.Limit, _ = strconv.Atoi(raw)
	}
	if raw := c.QueryParam("offset"); raw != "" {
		input.Offset, _ = strconv.Atoi(raw)
	}

	output, err := h.uc.Search(c.Request().Context(), middleware.CurrentUser(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, planListResponse{
		Plans: toPlanViews(output.Plans),
		Pagination: paginationView{
			Total:   output.Total,
			Limit:   output.Limit,
			Offset:  output.Offset,
			HasMore: output.HasMore,
		},
	}, "Plans retrieved successfully")
}

// GetByID returns one active plan with its provider and state.
func (h *PlanHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid plan ID")
	}

	plan, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlanView(plan), "Plan retrieved successfully")
}

// ListTypes returns the valid plan type values.
func (h *PlanHandler) ListTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListPlanTypes(c.Request().Context()), "Plan types retrieved successfully")
}

// floatQueryParam parses an optional numeric query parameter. The first
// parse failure is kept in parseErr.
func floatQueryParam(c echo.Context, name string, parseErr *error) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if *parseErr == nil {
			*parseErr = errors.Errorf("%s must be a number", name)
		}

		return nil
	}

	return &value
}
