package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/middleware"
	"github.com/noah-isme/kmq-gateway/internal/service"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/response"
)

type siteLister interface {
	ListWithClassrooms(ctx context.Context, req dto.SiteQuery) ([]dto.SiteWithClassrooms, bool, error)
}

type attendanceLogQuerier interface {
	Query(ctx context.Context, req dto.AttendanceLogQuery) (*dto.AttendanceLogResult, error)
}

type supportReportQuerier interface {
	Query(ctx context.Context, req dto.SupportReportQuery) (*dto.SupportReportResult, error)
}

type lessonPlanQuerier interface {
	Query(ctx context.Context, req dto.LessonPlanQuery) (*dto.LessonPlanResult, error)
}

type assessmentQuerier interface {
	Query(ctx context.Context, req dto.AssessmentQuery) (*dto.AssessmentResult, error)
}

type exporter interface {
	Render(format, name string, records interface{}) (*service.ExportFile, error)
}

// QueryServices groups the record query collaborators.
type QueryServices struct {
	Sites          siteLister
	AttendanceLogs attendanceLogQuerier
	SupportReports supportReportQuerier
	LessonPlans    lessonPlanQuerier
	Assessments    assessmentQuerier
	Export         exporter
}

// QueryHandler exposes the read-only record queries.
type QueryHandler struct {
	svc QueryServices
}

// NewQueryHandler constructs the handler.
func NewQueryHandler(svc QueryServices) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// Sites godoc
// @Summary List sites with classrooms
// @Tags Sites
// @Produce json
// @Param site_name query string false "Substring of the site name"
// @Param format query string false "csv or pdf to download"
// @Success 200 {object} response.Envelope
// @Router /sites [get]
func (h *QueryHandler) Sites(c *gin.Context) {
	var req dto.SiteQuery
	if !bindQuery(c, &req) {
		return
	}
	sites, hit, err := h.svc.Sites.ListWithClassrooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.download(c, "sites", sites) {
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, sites, middleware.Meta(c))
}

// AttendanceLogs godoc
// @Summary Query daily attendance logs
// @Tags Records
// @Produce json
// @Param site_id query string false "Site ID"
// @Param room_id query string false "Room ID"
// @Param start_date query string false "YYYY-MM-DD, default 7 days ago, at most 3 months ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param limit query int false "Maximum rows"
// @Param format query string false "csv or pdf to download"
// @Success 200 {object} dto.AttendanceLogResult
// @Failure 400 {object} dto.ErrorResult
// @Router /attendance-logs [get]
func (h *QueryHandler) AttendanceLogs(c *gin.Context) {
	var req dto.AttendanceLogQuery
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.svc.AttendanceLogs.Query(c.Request.Context(), req)
	if err != nil {
		response.QueryError(c, err)
		return
	}
	if h.download(c, "attendance_logs", result.Records) {
		return
	}
	response.Query(c, result)
}

// SupportReports godoc
// @Summary Query center support reports
// @Tags Records
// @Produce json
// @Param site_id query string false "Site ID"
// @Param user_id query string false "Exact staff user ID"
// @Param staff_name query string false "Substring of the staff user ID"
// @Param start_date query string false "YYYY-MM-DD, default 7 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param limit query int false "Maximum rows"
// @Param format query string false "csv or pdf to download"
// @Success 200 {object} dto.SupportReportResult
// @Failure 400 {object} dto.ErrorResult
// @Router /support-reports [get]
func (h *QueryHandler) SupportReports(c *gin.Context) {
	var req dto.SupportReportQuery
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.svc.SupportReports.Query(c.Request.Context(), req)
	if err != nil {
		response.QueryError(c, err)
		return
	}
	if h.download(c, "support_reports", result.Records) {
		return
	}
	response.Query(c, result)
}

// LessonPlans godoc
// @Summary Query lesson plans with DRDP measures
// @Tags Records
// @Produce json
// @Param lesson_type query string true "preschool or it"
// @Param site_id query string false "Site ID"
// @Param room_id query string false "Room ID"
// @Param teacher_name query string false "Substring of the teacher name"
// @Param start_date query string false "YYYY-MM-DD, default 7 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param limit query int false "Maximum rows"
// @Param format query string false "csv or pdf to download"
// @Success 200 {object} dto.LessonPlanResult
// @Failure 400 {object} dto.ErrorResult
// @Router /lesson-plans [get]
func (h *QueryHandler) LessonPlans(c *gin.Context) {
	var req dto.LessonPlanQuery
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.svc.LessonPlans.Query(c.Request.Context(), req)
	if err != nil {
		response.QueryError(c, err)
		return
	}
	if h.download(c, "lesson_plans", result.Records) {
		return
	}
	response.Query(c, result)
}

// Assessments godoc
// @Summary Query DRDP assessments with decoded levels
// @Tags Records
// @Produce json
// @Param site_id query string false "Site ID"
// @Param room_id query string false "Room ID"
// @Param child_id query string false "Child ID"
// @Param start_date query string false "YYYY-MM-DD, default 7 days ago"
// @Param end_date query string false "YYYY-MM-DD, default today"
// @Param limit query int false "Maximum rows"
// @Param format query string false "csv or pdf to download"
// @Success 200 {object} dto.AssessmentResult
// @Failure 400 {object} dto.ErrorResult
// @Router /assessments [get]
func (h *QueryHandler) Assessments(c *gin.Context) {
	var req dto.AssessmentQuery
	if !bindQuery(c, &req) {
		return
	}
	result, err := h.svc.Assessments.Query(c.Request.Context(), req)
	if err != nil {
		response.QueryError(c, err)
		return
	}
	if h.download(c, "assessments", result.Records) {
		return
	}
	response.Query(c, result)
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.QueryError(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return false
	}
	return true
}

// download renders records as an attachment when ?format= asks for a file
// and reports whether the response was written.
func (h *QueryHandler) download(c *gin.Context, name string, records interface{}) bool {
	format := c.Query("format")
	if format == "" || format == "json" || h.svc.Export == nil {
		return false
	}
	file, err := h.svc.Export.Render(format, name, records)
	if err != nil {
		response.Error(c, err)
		return true
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
	return true
}
