package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/gdocs"
)

const (
	defaultSpreadsheetPage = 20
	defaultSheetRange      = "Sheet1"
)

type documentClient interface {
	ListSpreadsheets(ctx context.Context, max int) ([]gdocs.Spreadsheet, error)
	ReadValues(ctx context.Context, spreadsheetID, rangeName string) ([][]interface{}, error)
	CreateSpreadsheet(ctx context.Context, title string) (gdocs.Spreadsheet, error)
	CreateForm(ctx context.Context, title, description string) (gdocs.Form, error)
}

// DocumentService proxies spreadsheet and form operations. With no client
// configured every call returns ErrDocumentsDisabled.
type DocumentService struct {
	client    documentClient
	validator *validator.Validate
	timeout   time.Duration
	logger    *zap.Logger
}

// NewDocumentService constructs the service. client may be nil. A positive
// timeout bounds each upstream call.
func NewDocumentService(client documentClient, validate *validator.Validate, timeout time.Duration, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{client: client, validator: validate, timeout: timeout, logger: logger}
}

// Enabled reports whether a document client is configured.
func (s *DocumentService) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *DocumentService) check(req interface{}) error {
	if !s.Enabled() {
		return appErrors.ErrDocumentsDisabled
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid document request")
	}
	return nil
}

func (s *DocumentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *DocumentService) upstream(op string, err error) error {
	s.logger.Warn("document service call failed", zap.String("op", op), zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrDocumentServiceFailed.Code, appErrors.ErrDocumentServiceFailed.Status, op+" failed")
}

// ListSpreadsheets returns the caller's spreadsheets, 20 by default.
func (s *DocumentService) ListSpreadsheets(ctx context.Context, req dto.ListSpreadsheetsRequest) ([]dto.SpreadsheetSummary, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	pageSize := req.MaxResults
	if pageSize <= 0 {
		pageSize = defaultSpreadsheetPage
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	files, err := s.client.ListSpreadsheets(ctx, pageSize)
	if err != nil {
		return nil, s.upstream("list spreadsheets", err)
	}
	out := make([]dto.SpreadsheetSummary, 0, len(files))
	for _, f := range files {
		out = append(out, dto.SpreadsheetSummary{Name: f.Name, ID: f.ID, URL: f.URL})
	}
	return out, nil
}

// ReadSheet returns the raw values of a range, "Sheet1" by default.
func (s *DocumentService) ReadSheet(ctx context.Context, req dto.ReadSheetRequest) (*dto.SheetValues, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	rangeName := req.RangeName
	if rangeName == "" {
		rangeName = defaultSheetRange
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	values, err := s.client.ReadValues(ctx, req.SpreadsheetID, rangeName)
	if err != nil {
		return nil, s.upstream("read sheet", err)
	}
	return &dto.SheetValues{SpreadsheetID: req.SpreadsheetID, Range: rangeName, Values: values}, nil
}

// SheetText renders a range as one line per row with cells joined by " | ".
func (s *DocumentService) SheetText(ctx context.Context, spreadsheetID, rangeName string) (string, error) {
	sheet, err := s.ReadSheet(ctx, dto.ReadSheetRequest{SpreadsheetID: spreadsheetID, RangeName: rangeName})
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(sheet.Values))
	for _, row := range sheet.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return strings.Join(lines, "\n"), nil
}

// CreateSpreadsheet creates an empty spreadsheet.
func (s *DocumentService) CreateSpreadsheet(ctx context.Context, req dto.CreateSpreadsheetRequest) (*dto.CreatedSpreadsheet, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	sheet, err := s.client.CreateSpreadsheet(ctx, req.Title)
	if err != nil {
		return nil, s.upstream("create spreadsheet", err)
	}
	s.logger.Info("spreadsheet created", zap.String("spreadsheet_id", sheet.ID))
	return &dto.CreatedSpreadsheet{SpreadsheetID: sheet.ID, URL: sheet.URL}, nil
}

// CreateForm creates a form.
func (s *DocumentService) CreateForm(ctx context.Context, req dto.CreateFormRequest) (*dto.CreatedForm, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	form, err := s.client.CreateForm(ctx, req.Title, req.Description)
	if err != nil {
		return nil, s.upstream("create form", err)
	}
	s.logger.Info("form created", zap.String("form_id", form.ID))
	return &dto.CreatedForm{FormID: form.ID, URL: form.URL}, nil
}
