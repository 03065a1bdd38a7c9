package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurai/internal/domain/entity"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanUsecase struct {
	lastInput usecase.SearchPlansInput
}

func (s *stubPlanUsecase) Search(_ context.Context, _ *entity.User, input usecase.SearchPlansInput) (*usecase.SearchPlansOutput, error) {
	s.lastInput = input

	return &usecase.SearchPlansOutput{Limit: input.Limit}, nil
}

func (s *stubPlanUsecase) GetByID(_ context.Context, _ uuid.UUID) (*entity.Plan, error) {
	return nil, errors.New("not used")
}

func (s *stubPlanUsecase) ListPlanTypes(_ context.Context) []entity.PlanType {
	return nil
}

func TestPlanHandler_SearchQueryParams(t *testing.T) {
	t.Parallel()

	uc := &stubPlanUsecase{}
	h := NewPlanHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/plans?type=Health&state_id=2&max_cost=500&coverage_type=family", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Search(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Health", uc.lastInput.PlanType)
	assert.Equal(t, uint(2), uc.lastInput.StateID)
	assert.Equal(t, "family", uc.lastInput.CoverageType)
	require.NotNil(t, uc.lastInput.MaxCost)
	assert.Equal(t, 500.0, *uc.lastInput.MaxCost)
}

func TestPlanHandler_SearchRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	h := NewPlanHandler(&stubPlanUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/plans?max_cost=cheap", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Search(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
