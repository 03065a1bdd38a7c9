package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"insurai/config"
	"insurai/internal/delivery/http/middleware"
	"insurai/internal/delivery/http/response"
	"insurai/internal/domain/repository"
	"insurai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative endpoints.
type AdminHandler struct {
	ingestionUC usecase.IngestionUsecase
	adminUC     usecase.AdminUsecase
	cfg         *config.Config
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(ingestionUC usecase.IngestionUsecase, adminUC usecase.AdminUsecase, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		ingestionUC: ingestionUC,
		adminUC:     adminUC,
		cfg:         cfg,
	}
}

type ingestResponse struct {
	ProviderName    string               `json:"provider_name"`
	PlansAdded      int                  `json:"plans_added"`
	PlansReplaced   int64                `json:"plans_replaced"`
	FilesSuccessful int                  `json:"files_successful"`
	FilesFailed     int                  `json:"files_failed"`
	Details         []documentResultView `json:"details"`
	Plans           []*planView          `json:"plans"`
}

// UploadPlans takes a multipart batch of plan documents, stages them to the
// upload temp directory and runs the ingestion pipeline. Field "documents"
// carries the files; "state_id" targets the emirate and the optional
// "provider_name" fills in when the documents do not name their provider.
func (h *AdminHandler) UploadPlans(c echo.Context) error {
	stateID, err := strconv.ParseUint(c.FormValue("state_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "state_id is required and must be a number")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart form data is required")
	}

	files := form.File["documents"]
	if len(files) == 0 {
		return response.BadRequest(c, "NO_FILES_UPLOADED", "At least one document is required")
	}

	docs, err := h.stageUploads(files)
	if err != nil {
		removeStaged(docs)

		return errors.WithStack(err)
	}

	output, err := h.ingestionUC.Ingest(c.Request().Context(), usecase.IngestInput{
		StateID:      uint(stateID),
		ProviderName: c.FormValue("provider_name"),
		Documents:    docs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	middleware.PlansIngestedCounter.Add(float64(output.PlansAdded))

	return response.Success(c, http.StatusOK, ingestResponse{
		ProviderName:    output.ProviderName,
		PlansAdded:      output.PlansAdded,
		PlansReplaced:   output.PlansReplaced,
		FilesSuccessful: output.FilesSuccessful,
		FilesFailed:     output.FilesFailed,
		Details:         toDocumentResultViews(output.Details),
		Plans:           toPlanViews(output.Plans),
	}, "Documents processed successfully")
}

// stageUploads copies each uploaded file to the temp directory under a
// unique name. The ingestion pipeline owns the staged files from then on
// and removes them when done.
func (h *AdminHandler) stageUploads(files []*multipart.FileHeader) ([]usecase.UploadedDocument, error) {
	docs := make([]usecase.UploadedDocument, 0, len(files))
	for _, file := range files {
		if file.Size > h.cfg.Upload.MaxFileSize {
			return docs, errors.Errorf("file %s exceeds the upload size limit", file.Filename)
		}

		src, err := file.Open()
		if err != nil {
			return docs, errors.Wrapf(err, "failed to open upload %s", file.Filename)
		}

		tempPath := filepath.Join(h.cfg.Upload.TempDir, "insurai-upload-"+uuid.New().String())
		dst, err := os.Create(tempPath)
		if err != nil {
			src.Close()

			return docs, errors.Wrap(err, "failed to stage upload")
		}

		_, err = io.Copy(dst, src)
		src.Close()
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(tempPath)

			return docs, errors.Wrapf(err, "failed to stage upload %s", file.Filename)
		}

		docs = append(docs, usecase.UploadedDocument{
			TempPath:     tempPath,
			OriginalName: file.Filename,
			Size:         file.Size,
		})
	}

	return docs, nil
}

func removeStaged(docs []usecase.UploadedDocument) {
	for _, doc := range docs {
		os.Remove(doc.TempPath)
	}
}

// ListPlans returns plans including inactive ones, newest first, narrowed by
// the optional state_id, is_active, limit and offset query parameters.
func (h *AdminHandler) ListPlans(c echo.Context) error {
	var input usecase.ListPlansInput

	if raw := c.QueryParam("state_id"); raw != "" {
		stateID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "state_id must be a number")
		}
		input.StateID = uint(stateID)
	}
	if raw := c.QueryParam("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "is_active must be a boolean")
		}
		input.IsActive = &isActive
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "offset must be an integer")
		}
		input.Offset = offset
	}

	output, err := h.adminUC.ListPlans(c.Request().Context(), input)
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

type updatePlanRequest struct {
	PlanName     *string  `json:"plan_name"`
	MonthlyCost  *float64 `json:"monthly_cost"`
	AnnualCost   *float64 `json:"annual_cost"`
	Deductible   *float64 `json:"deductible"`
	MaxCoverage  *float64 `json:"max_coverage"`
	CoverageType *string  `json:"coverage_type"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
}

// UpdatePlan applies a partial update to one plan.
func (h *AdminHandler) UpdatePlan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid plan ID")
	}

	var req updatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan update input")
	}

	plan, err := h.adminUC.UpdatePlan(c.Request().Context(), id, repository.PlanPatch{
		PlanName:     req.PlanName,
		MonthlyCost:  req.MonthlyCost,
		AnnualCost:   req.AnnualCost,
		Deductible:   req.Deductible,
		MaxCoverage:  req.MaxCoverage,
		CoverageType: req.CoverageType,
		Features:     req.Features,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlanView(plan), "Plan updated successfully")
}

// DeletePlan deactivates a plan, or removes it for good with
// ?hard_delete=true.
func (h *AdminHandler) DeletePlan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid plan ID")
	}

	hard := c.QueryParam("hard_delete") == "true"
	if err := h.adminUC.DeletePlan(c.Request().Context(), id, hard); err != nil {
		return errors.WithStack(err)
	}

	message := "Plan deactivated successfully"
	if hard {
		message = "Plan deleted successfully"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"hard_delete": hard}, message)
}

type statsResponse struct {
	TotalPlans     int64           `json:"total_plans"`
	ActivePlans    int64           `json:"active_plans"`
	TotalProviders int64           `json:"total_providers"`
	TotalUsers     int64           `json:"total_users"`
	PlansByType    []typeStatView  `json:"plans_by_type"`
	PlansByState   []stateStatView `json:"plans_by_state"`
}

type typeStatView struct {
	PlanType string `json:"plan_type"`
	Count    int64  `json:"count"`
}

type stateStatView struct {
	StateID   uint   `json:"state_id"`
	StateName string `json:"state_name"`
	Count     int64  `json:"count"`
}

// Stats returns the platform overview for the admin dashboard.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := statsResponse{
		TotalPlans:     stats.TotalPlans,
		ActivePlans:    stats.ActivePlans,
		TotalProviders: stats.TotalProviders,
		TotalUsers:     stats.TotalUsers,
		PlansByType:    make([]typeStatView, 0, len(stats.PlansByType)),
		PlansByState:   make([]stateStatView, 0, len(stats.PlansByState)),
	}
	for _, row := range stats.PlansByType {
		out.PlansByType = append(out.PlansByType, typeStatView{PlanType: row.PlanType, Count: row.Count})
	}
	for _, row := range stats.PlansByState {
		out.PlansByState = append(out.PlansByState, stateStatView{
			StateID:   row.StateID,
			StateName: row.StateName,
			Count:     row.Count,
		})
	}

	return response.Success(c, http.StatusOK, out, "Statistics retrieved successfully")
}
