package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/service"
)

const (
	startDateHelp = "Start date in YYYY-MM-DD format (defaults to 7 days ago)"
	endDateHelp   = "End date in YYYY-MM-DD format (defaults to today)"
	limitHelp     = "Maximum number of records to return"
)

func windowOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("start_date", mcp.Description(startDateHelp)),
		mcp.WithString("end_date", mcp.Description(endDateHelp)),
		mcp.WithNumber("limit", mcp.Description(limitHelp), mcp.DefaultNumber(service.DefaultQueryLimit)),
	}
}

func queryTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)
	all = append(all, windowOptions()...)
	return mcp.NewTool(name, all...)
}

func (s *Server) registerQueryTools() {
	s.addTool(mcp.NewTool("get_sites_with_classrooms",
		mcp.WithDescription("Get all sites with their classrooms in a hierarchical structure."),
		mcp.WithString("site_name", mcp.Description("Optional filter by site name (partial match)")),
	), s.sites)

	s.addTool(queryTool("query_attendance_logs",
		"Query daily attendance logs for sites or classrooms within a date range. The start date cannot be more than 3 months ago.",
		mcp.WithString("site_id", mcp.Description("Optional filter by site")),
		mcp.WithString("room_id", mcp.Description("Optional filter by classroom")),
	), s.attendanceLogs)

	s.addTool(queryTool("query_center_support_reports",
		"Query center support reports within a date range of at most one year.",
		mcp.WithString("site_id", mcp.Description("Optional filter by site")),
		mcp.WithString("user_id", mcp.Description("Optional exact filter by staff user id")),
		mcp.WithString("staff_name", mcp.Description("Optional filter by staff name, matched within the user id e.g. firstname.lastname")),
	), s.supportReports)

	s.addTool(queryTool("query_lesson_plans",
		"Query lesson plans within a date range of at most one year, including their DRDP measures.",
		mcp.WithString("lesson_type", mcp.Required(), mcp.Enum("preschool", "it"),
			mcp.Description("Lesson plan type: preschool or it (infant/toddler)")),
		mcp.WithString("site_id", mcp.Description("Optional filter by site")),
		mcp.WithString("room_id", mcp.Description("Optional filter by classroom")),
		mcp.WithString("teacher_name", mcp.Description("Optional filter by teacher name (partial match)")),
	), s.lessonPlans)

	s.addTool(queryTool("query_drdp_records",
		"Query DRDP assessment records with converted level descriptions, within a date range of at most one year.",
		mcp.WithString("site_id", mcp.Description("Optional filter by site")),
		mcp.WithString("room_id", mcp.Description("Optional filter by classroom")),
		mcp.WithString("child_id", mcp.Description("Optional filter by child")),
	), s.assessments)
}

func (s *Server) sites(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.SiteQuery
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	sites, _, err := s.svc.Sites.ListWithClassrooms(ctx, req)
	return sites, err
}

func (s *Server) attendanceLogs(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.AttendanceLogQuery
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.AttendanceLogs.Query(ctx, req)
}

func (s *Server) supportReports(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.SupportReportQuery
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.SupportReports.Query(ctx, req)
}

func (s *Server) lessonPlans(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.LessonPlanQuery
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.LessonPlans.Query(ctx, req)
}

func (s *Server) assessments(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.AssessmentQuery
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.Assessments.Query(ctx, req)
}
