package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/gdocs"
)

type fakeDocumentClient struct {
	deadline  bool
	pageSize  int
	rangeName string
	values    [][]interface{}
	err       error
}

func (f *fakeDocumentClient) ListSpreadsheets(ctx context.Context, max int) ([]gdocs.Spreadsheet, error) {
	_, f.deadline = ctx.Deadline()
	f.pageSize = max
	if f.err != nil {
		return nil, f.err
	}
	return []gdocs.Spreadsheet{{ID: "sheet-1", Name: "Enrollment", URL: "https://docs.example/sheet-1"}}, nil
}

func (f *fakeDocumentClient) ReadValues(_ context.Context, _ string, rangeName string) ([][]interface{}, error) {
	f.rangeName = rangeName
	return f.values, f.err
}

func (f *fakeDocumentClient) CreateSpreadsheet(_ context.Context, title string) (gdocs.Spreadsheet, error) {
	return gdocs.Spreadsheet{ID: "new-sheet", Name: title, URL: "https://docs.example/new-sheet"}, f.err
}

func (f *fakeDocumentClient) CreateForm(_ context.Context, _, _ string) (gdocs.Form, error) {
	return gdocs.Form{ID: "form-1", URL: "https://forms.example/form-1"}, f.err
}

func TestDocumentServiceDisabled(t *testing.T) {
	svc := NewDocumentService(nil, nil, 0, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.ListSpreadsheets(context.Background(), dto.ListSpreadsheetsRequest{})
	assert.ErrorIs(t, err, appErrors.ErrDocumentsDisabled)
	_, err = svc.CreateForm(context.Background(), dto.CreateFormRequest{Title: "Intake"})
	assert.ErrorIs(t, err, appErrors.ErrDocumentsDisabled)
}

func TestDocumentServiceDefaults(t *testing.T) {
	client := &fakeDocumentClient{values: [][]interface{}{{"name", "age"}}}
	svc := NewDocumentService(client, nil, 0, nil)

	files, err := svc.ListSpreadsheets(context.Background(), dto.ListSpreadsheetsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, client.pageSize)
	assert.Equal(t, []dto.SpreadsheetSummary{{Name: "Enrollment", ID: "sheet-1", URL: "https://docs.example/sheet-1"}}, files)

	sheet, err := svc.ReadSheet(context.Background(), dto.ReadSheetRequest{SpreadsheetID: "sheet-1"})
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", client.rangeName)
	assert.Equal(t, "Sheet1", sheet.Range)
}

func TestDocumentServiceValidatesRequests(t *testing.T) {
	svc := NewDocumentService(&fakeDocumentClient{}, nil, 0, nil)

	_, err := svc.ReadSheet(context.Background(), dto.ReadSheetRequest{})
	requireAppError(t, err, appErrors.ErrValidation, "invalid document request")

	_, err = svc.ListSpreadsheets(context.Background(), dto.ListSpreadsheetsRequest{MaxResults: 5000})
	requireAppError(t, err, appErrors.ErrValidation, "")
}

func TestDocumentServiceSheetText(t *testing.T) {
	client := &fakeDocumentClient{values: [][]interface{}{{"name", "age"}, {"Ana", 4}}}
	svc := NewDocumentService(client, nil, 0, nil)

	text, err := svc.SheetText(context.Background(), "sheet-1", "Roster!A1:B2")
	require.NoError(t, err)
	assert.Equal(t, "name | age\nAna | 4", text)
	assert.Equal(t, "Roster!A1:B2", client.rangeName)
}

func TestDocumentServiceWrapsUpstreamFailures(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewDocumentService(&fakeDocumentClient{err: boom}, nil, 0, nil)

	_, err := svc.CreateSpreadsheet(context.Background(), dto.CreateSpreadsheetRequest{Title: "Report"})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrDocumentServiceFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 502, appErrors.FromError(err).Status)
}

func TestDocumentServiceCreate(t *testing.T) {
	svc := NewDocumentService(&fakeDocumentClient{}, nil, 0, nil)

	sheet, err := svc.CreateSpreadsheet(context.Background(), dto.CreateSpreadsheetRequest{Title: "Report"})
	require.NoError(t, err)
	assert.Equal(t, "new-sheet", sheet.SpreadsheetID)

	form, err := svc.CreateForm(context.Background(), dto.CreateFormRequest{Title: "Intake", Description: "Family intake"})
	require.NoError(t, err)
	assert.Equal(t, &dto.CreatedForm{FormID: "form-1", URL: "https://forms.example/form-1"}, form)
}

func TestDocumentServiceBoundsUpstreamCalls(t *testing.T) {
	client := &fakeDocumentClient{}
	_, err := NewDocumentService(client, nil, 0, nil).ListSpreadsheets(context.Background(), dto.ListSpreadsheetsRequest{})
	require.NoError(t, err)
	assert.False(t, client.deadline)

	_, err = NewDocumentService(client, nil, time.Second, nil).ListSpreadsheets(context.Background(), dto.ListSpreadsheetsRequest{})
	require.NoError(t, err)
	assert.True(t, client.deadline)
}
