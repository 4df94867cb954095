package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/service"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

type recordingObserver struct {
	calls map[string]string
}

func (r *recordingObserver) ObserveToolCall(tool, outcome string, _ time.Duration) {
	r.calls[tool] = outcome
}

type sitesStub struct{}

func (sitesStub) ListWithClassrooms(_ context.Context, req dto.SiteQuery) ([]dto.SiteWithClassrooms, bool, error) {
	return []dto.SiteWithClassrooms{{SiteID: "S1", Classrooms: []dto.Classroom{}}}, false, nil
}

type attendanceStub struct {
	req dto.AttendanceLogQuery
	err error
}

func (s *attendanceStub) Query(_ context.Context, req dto.AttendanceLogQuery) (*dto.AttendanceLogResult, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AttendanceLogResult{
		QueryInfo: dto.AttendanceLogQueryInfo{WindowInfo: dto.WindowInfo{StartDate: "2024-03-08", EndDate: "2024-03-15", DurationDays: 7}},
		Records:   []dto.AttendanceLogRecord{},
	}, nil
}

type supportStub struct{}

func (supportStub) Query(context.Context, dto.SupportReportQuery) (*dto.SupportReportResult, error) {
	return nil, errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
}

type lessonPlanStub struct{}

func (lessonPlanStub) Query(_ context.Context, req dto.LessonPlanQuery) (*dto.LessonPlanResult, error) {
	return nil, appErrors.Clone(appErrors.ErrInvalidLessonType, "Invalid lesson_type. Must be either 'preschool' or 'it' (infant/toddler).")
}

type assessmentStub struct{}

func (assessmentStub) Query(context.Context, dto.AssessmentQuery) (*dto.AssessmentResult, error) {
	return &dto.AssessmentResult{Records: []dto.AssessmentRecord{}}, nil
}

type documentsStub struct {
	disabled bool
	id       string
	rng      string
}

func (d *documentsStub) ListSpreadsheets(context.Context, dto.ListSpreadsheetsRequest) ([]dto.SpreadsheetSummary, error) {
	if d.disabled {
		return nil, appErrors.ErrDocumentsDisabled
	}
	return []dto.SpreadsheetSummary{{Name: "Roster", ID: "s1", URL: "https://docs.example/s1"}}, nil
}

func (d *documentsStub) ReadSheet(_ context.Context, req dto.ReadSheetRequest) (*dto.SheetValues, error) {
	return &dto.SheetValues{Values: [][]interface{}{{"a", "b"}}}, nil
}

func (d *documentsStub) SheetText(_ context.Context, id, rng string) (string, error) {
	d.id, d.rng = id, rng
	return "a | b\nc | d", nil
}

func (d *documentsStub) CreateSpreadsheet(context.Context, dto.CreateSpreadsheetRequest) (*dto.CreatedSpreadsheet, error) {
	return &dto.CreatedSpreadsheet{SpreadsheetID: "new", URL: "https://docs.example/new"}, nil
}

func (d *documentsStub) CreateForm(context.Context, dto.CreateFormRequest) (*dto.CreatedForm, error) {
	return &dto.CreatedForm{FormID: "f1", URL: "https://forms.example/f1"}, nil
}

type harness struct {
	server     *Server
	observer   *recordingObserver
	attendance *attendanceStub
	documents  *documentsStub
}

func newHarness() *harness {
	h := &harness{
		observer:   &recordingObserver{calls: map[string]string{}},
		attendance: &attendanceStub{},
		documents:  &documentsStub{},
	}
	h.server = New(Services{
		Sites:          sitesStub{},
		AttendanceLogs: h.attendance,
		SupportReports: supportStub{},
		LessonPlans:    lessonPlanStub{},
		Assessments:    assessmentStub{},
		Documents:      h.documents,
	}, h.observer, nil, "test")
	return h
}

func (h *harness) call(t *testing.T, tool string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	handler, ok := h.server.handlers[tool]
	require.True(t, ok, tool)
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServerRegistersEveryTool(t *testing.T) {
	h := newHarness()
	for _, name := range []string{
		"get_sites_with_classrooms", "query_attendance_logs", "query_center_support_reports",
		"query_lesson_plans", "query_drdp_records", "list_spreadsheets", "read_sheet",
		"create_spreadsheet", "create_form",
	} {
		assert.Contains(t, h.server.handlers, name)
	}
	assert.Len(t, h.server.handlers, 9)
}

func TestQueryToolDecodesArguments(t *testing.T) {
	h := newHarness()
	result := h.call(t, "query_attendance_logs", map[string]interface{}{
		"site_id":    "S1",
		"start_date": "2024-03-08",
		"limit":      float64(25),
	})

	assert.False(t, result.IsError)
	assert.Equal(t, "S1", h.attendance.req.SiteID)
	assert.Equal(t, "2024-03-08", *h.attendance.req.StartDate)
	assert.Equal(t, 25, h.attendance.req.Limit)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &body))
	info := body["query_info"].(map[string]interface{})
	assert.Equal(t, float64(7), info["duration_days"])
	assert.Equal(t, service.OutcomeOK, h.observer.calls["query_attendance_logs"])
}

func TestQueryToolValidationErrorIsStructured(t *testing.T) {
	h := newHarness()
	result := h.call(t, "query_lesson_plans", map[string]interface{}{"lesson_type": "college"})

	assert.False(t, result.IsError)
	var body dto.ErrorResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &body))
	assert.Equal(t, "Invalid lesson_type. Must be either 'preschool' or 'it' (infant/toddler).", body.Error)
	assert.Equal(t, "INVALID_LESSON_TYPE", body.Code)
	assert.NotNil(t, body.Records)
	assert.Empty(t, body.Records)
	assert.Equal(t, service.OutcomeInvalid, h.observer.calls["query_lesson_plans"])
}

func TestQueryToolRejectsMistypedArguments(t *testing.T) {
	h := newHarness()
	result := h.call(t, "query_attendance_logs", map[string]interface{}{"limit": "lots"})

	var body dto.ErrorResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Error, "invalid arguments")
}

func TestQueryToolStoreFailureIsToolError(t *testing.T) {
	h := newHarness()
	result := h.call(t, "query_center_support_reports", nil)

	assert.True(t, result.IsError)
	assert.Equal(t, "internal server error", resultText(t, result))
	assert.Equal(t, service.OutcomeError, h.observer.calls["query_center_support_reports"])
}

func TestDocumentToolsDisabled(t *testing.T) {
	h := newHarness()
	h.documents.disabled = true
	result := h.call(t, "list_spreadsheets", map[string]interface{}{})

	assert.True(t, result.IsError)
	assert.Equal(t, "document service is not configured", resultText(t, result))
}

func TestReadSheetToolReturnsValues(t *testing.T) {
	h := newHarness()
	result := h.call(t, "read_sheet", map[string]interface{}{"spreadsheet_id": "s1"})

	var values [][]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &values))
	assert.Equal(t, [][]interface{}{{"a", "b"}}, values)
}

func TestSheetResource(t *testing.T) {
	h := newHarness()
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "sheet://abc123/Roster%21A1%3AB2"

	contents, err := h.server.readSheetResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "a | b\nc | d", text.Text)
	assert.Equal(t, "abc123", h.documents.id)
	assert.Equal(t, "Roster!A1:B2", h.documents.rng)
}

func TestParseSheetURI(t *testing.T) {
	id, rng, err := parseSheetURI("sheet://abc/Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "Sheet1", rng)

	id, rng, err = parseSheetURI("sheet://abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Empty(t, rng)

	_, _, err = parseSheetURI("file:///etc/passwd")
	assert.Error(t, err)
	_, _, err = parseSheetURI("sheet:///Sheet1")
	assert.Error(t, err)
}

func TestPromptsAreStatic(t *testing.T) {
	require.Len(t, prompts, 3)
	for _, p := range prompts {
		result := p.result()
		require.Len(t, result.Messages, 1)
		assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
		text := result.Messages[0].Content.(mcp.TextContent).Text
		assert.NotEmpty(t, text, p.name)
	}
	assert.Contains(t, prompts[0].text, "read_sheet")
	assert.Contains(t, prompts[2].text, "create_form")
}
