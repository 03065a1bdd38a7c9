package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurai/config"
	"insurai/internal/domain/entity"
	"insurai/internal/domain/repository"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIngestionUsecase struct {
	lastInput usecase.IngestInput
	output    *usecase.IngestOutput
	err       error
}

func (s *stubIngestionUsecase) Ingest(_ context.Context, input usecase.IngestInput) (*usecase.IngestOutput, error) {
	s.lastInput = input

	return s.output, s.err
}

type stubAdminUsecase struct{}

func (s *stubAdminUsecase) ListPlans(_ context.Context, _ usecase.ListPlansInput) (*usecase.ListPlansOutput, error) {
	return nil, errors.New("not used")
}

func (s *stubAdminUsecase) UpdatePlan(_ context.Context, _ uuid.UUID, _ repository.PlanPatch) (*entity.Plan, error) {
	return nil, errors.New("not used")
}

func (s *stubAdminUsecase) DeletePlan(_ context.Context, _ uuid.UUID, _ bool) error {
	return errors.New("not used")
}

func (s *stubAdminUsecase) Stats(_ context.Context) (*usecase.PlatformStats, error) {
	return nil, errors.New("not used")
}

func TestAdminHandler_UploadPlans(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Upload: &config.UploadConfig{MaxFileSize: 1 << 20, TempDir: t.TempDir()},
	}
	ingestion := &stubIngestionUsecase{
		output: &usecase.IngestOutput{
			ProviderName:    "GulfShield",
			PlansAdded:      2,
			FilesSuccessful: 1,
		},
	}
	h := NewAdminHandler(ingestion, &stubAdminUsecase{}, cfg)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("state_id", "1"))
	part, err := writer.CreateFormFile("documents", "plans.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 sample"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-plans", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, h.UploadPlans(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, uint(1), ingestion.lastInput.StateID)
	require.Len(t, ingestion.lastInput.Documents, 1)
	assert.Equal(t, "plans.pdf", ingestion.lastInput.Documents[0].OriginalName)
}

func TestAdminHandler_UploadPlansWithoutFiles(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Upload: &config.UploadConfig{MaxFileSize: 1 << 20, TempDir: t.TempDir()},
	}
	h := NewAdminHandler(&stubIngestionUsecase{}, &stubAdminUsecase{}, cfg)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("state_id", "1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload-plans", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, h.UploadPlans(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
