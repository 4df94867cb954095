// Package gdocs wraps the Drive, Sheets and Forms APIs used by the document tools.
package gdocs

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMimeQuery = "mimeType='application/vnd.google-apps.spreadsheet'"

// Spreadsheet identifies a spreadsheet file.
type Spreadsheet struct {
	ID   string
	Name string
	URL  string
}

// Form identifies a form and its responder link.
type Form struct {
	ID  string
	URL string
}

// Client issues document-service calls.
type Client struct {
	drive  *drive.Service
	sheets *sheets.Service
	forms  *forms.Service
}

// New authenticates with the stored token at tokenPath, refreshing it as needed.
func New(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	conf, err := LoadConfig(credentialsPath)
	if err != nil {
		return nil, err
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	source := oauth2.ReuseTokenSource(tok, newPersistingTokenSource(conf.TokenSource(ctx, tok), tokenPath, tok))
	return NewWithOptions(ctx, option.WithTokenSource(source))
}

// NewWithOptions builds a client from explicit API options.
func NewWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	formsSvc, err := forms.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("forms service: %w", err)
	}
	return &Client{drive: driveSvc, sheets: sheetsSvc, forms: formsSvc}, nil
}

// ListSpreadsheets returns up to max spreadsheets visible to the user.
func (c *Client) ListSpreadsheets(ctx context.Context, max int) ([]Spreadsheet, error) {
	resp, err := c.drive.Files.List().
		Q(spreadsheetMimeQuery).
		PageSize(int64(max)).
		Fields(googleapi.Field("files(id, name, webViewLink)")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list spreadsheets: %w", err)
	}
	out := make([]Spreadsheet, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, Spreadsheet{ID: f.Id, Name: f.Name, URL: f.WebViewLink})
	}
	return out, nil
}

// ReadValues returns the cell values of rangeName.
func (c *Client) ReadValues(ctx context.Context, spreadsheetID, rangeName string) ([][]interface{}, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", spreadsheetID, rangeName, err)
	}
	if resp.Values == nil {
		return [][]interface{}{}, nil
	}
	return resp.Values, nil
}

// CreateSpreadsheet creates an empty spreadsheet.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (Spreadsheet, error) {
	resp, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return Spreadsheet{}, fmt.Errorf("create spreadsheet: %w", err)
	}
	return Spreadsheet{ID: resp.SpreadsheetId, Name: title, URL: resp.SpreadsheetUrl}, nil
}

// CreateForm creates a form with the given title and optional description.
func (c *Client) CreateForm(ctx context.Context, title, description string) (Form, error) {
	info := &forms.Info{Title: title, DocumentTitle: title}
	if description != "" {
		info.Description = description
	}
	resp, err := c.forms.Forms.Create(&forms.Form{Info: info}).Context(ctx).Do()
	if err != nil {
		return Form{}, fmt.Errorf("create form: %w", err)
	}
	return Form{ID: resp.FormId, URL: resp.ResponderUri}, nil
}
