// Package tools exposes the record queries and document operations as tools
// on a stdio tool server.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/service"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

// ServerName identifies the tool server to clients.
const ServerName = "kmq-gateway"

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

type documentService interface {
	ListSpreadsheets(ctx context.Context, req dto.ListSpreadsheetsRequest) ([]dto.SpreadsheetSummary, error)
	ReadSheet(ctx context.Context, req dto.ReadSheetRequest) (*dto.SheetValues, error)
	SheetText(ctx context.Context, spreadsheetID, rangeName string) (string, error)
	CreateSpreadsheet(ctx context.Context, req dto.CreateSpreadsheetRequest) (*dto.CreatedSpreadsheet, error)
	CreateForm(ctx context.Context, req dto.CreateFormRequest) (*dto.CreatedForm, error)
}

type toolObserver interface {
	ObserveToolCall(tool, outcome string, duration time.Duration)
}

// Services are the collaborators behind the tools.
type Services struct {
	Sites          siteLister
	AttendanceLogs attendanceLogQuerier
	SupportReports supportReportQuerier
	LessonPlans    lessonPlanQuerier
	Assessments    assessmentQuerier
	Documents      documentService
}

// toolFunc decodes its arguments from raw and returns a JSON-encodable result.
type toolFunc func(ctx context.Context, raw json.RawMessage) (interface{}, error)

// Server is the tool server.
type Server struct {
	mcp      *server.MCPServer
	svc      Services
	metrics  toolObserver
	logger   *zap.Logger
	handlers map[string]server.ToolHandlerFunc
}

// New registers every tool, the sheet resource and the prompts.
func New(svc Services, metrics toolObserver, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mcp: server.NewMCPServer(ServerName, version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
			server.WithRecovery(),
		),
		svc:      svc,
		metrics:  metrics,
		logger:   logger,
		handlers: make(map[string]server.ToolHandlerFunc),
	}
	s.registerQueryTools()
	s.registerDocumentTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// Serve speaks the protocol over in/out until ctx is cancelled or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))
	s.logger.Info("tool server listening on stdio", zap.Int("tools", len(s.handlers)))
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) addTool(tool mcp.Tool, fn toolFunc) {
	h := s.wrap(tool.Name, fn)
	s.handlers[tool.Name] = h
	s.mcp.AddTool(tool, h)
}

// wrap adapts fn to the protocol. Caller input errors become a structured
// {error, code, records} result; other failures become tool errors.
func (s *Server) wrap(name string, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		outcome := service.OutcomeOK
		defer func() {
			if s.metrics != nil {
				s.metrics.ObserveToolCall(name, outcome, time.Since(start))
			}
		}()

		raw, err := json.Marshal(req.GetArguments())
		if err != nil {
			outcome = service.OutcomeInvalid
			return mcp.NewToolResultError("arguments must be an object"), nil
		}

		result, err := fn(ctx, raw)
		if err != nil {
			if appErrors.IsValidation(err) {
				outcome = service.OutcomeInvalid
				appErr := appErrors.FromError(err)
				return textResult(dto.NewErrorResult(appErr.Code, appErr.Error()))
			}
			outcome = service.OutcomeError
			appErr := appErrors.FromError(err)
			s.logger.Warn("tool call failed", zap.String("tool", name), zap.Error(err))
			return mcp.NewToolResultError(appErr.Message), nil
		}
		return textResult(result)
	}
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(body)), nil
}

// decodeArgs unmarshals tool arguments into dest.
func decodeArgs(raw json.RawMessage, dest interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid arguments")
	}
	return nil
}
