package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/noah-isme/kmq-gateway/internal/dto"
)

const sheetURITemplate = "sheet://{spreadsheet_id}/{range_name}"

func (s *Server) registerDocumentTools() {
	s.addTool(mcp.NewTool("list_spreadsheets",
		mcp.WithDescription("List the user's spreadsheets with their names, ids and URLs."),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of spreadsheets to return"), mcp.DefaultNumber(20)),
	), s.listSpreadsheets)

	s.addTool(mcp.NewTool("read_sheet",
		mcp.WithDescription("Read cell values from a spreadsheet range."),
		mcp.WithString("spreadsheet_id", mcp.Required(), mcp.Description("The spreadsheet id from its URL")),
		mcp.WithString("range_name", mcp.Description("A1 notation of the range to read"), mcp.DefaultString("Sheet1")),
	), s.readSheet)

	s.addTool(mcp.NewTool("create_spreadsheet",
		mcp.WithDescription("Create a new spreadsheet."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the new spreadsheet")),
	), s.createSpreadsheet)

	s.addTool(mcp.NewTool("create_form",
		mcp.WithDescription("Create a new form."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the form")),
		mcp.WithString("description", mcp.Description("Optional form description")),
	), s.createForm)
}

func (s *Server) listSpreadsheets(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.ListSpreadsheetsRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.Documents.ListSpreadsheets(ctx, req)
}

func (s *Server) readSheet(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.ReadSheetRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	sheet, err := s.svc.Documents.ReadSheet(ctx, req)
	if err != nil {
		return nil, err
	}
	return sheet.Values, nil
}

func (s *Server) createSpreadsheet(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.CreateSpreadsheetRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.Documents.CreateSpreadsheet(ctx, req)
}

func (s *Server) createForm(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	var req dto.CreateFormRequest
	if err := decodeArgs(raw, &req); err != nil {
		return nil, err
	}
	return s.svc.Documents.CreateForm(ctx, req)
}

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(sheetURITemplate, "Spreadsheet range",
			mcp.WithTemplateDescription("Spreadsheet range rendered as one line per row with cells separated by |"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		s.readSheetResource,
	)
}

func (s *Server) readSheetResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	spreadsheetID, rangeName, err := parseSheetURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	text, err := s.svc.Documents.SheetText(ctx, spreadsheetID, rangeName)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/plain", Text: text},
	}, nil
}

// parseSheetURI splits sheet://{spreadsheet_id}/{range_name}. The range is
// everything after the first slash and may be percent-encoded.
func parseSheetURI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "sheet://")
	if !ok {
		return "", "", fmt.Errorf("unsupported resource %q", uri)
	}
	id, rangeName, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", "", fmt.Errorf("resource %q has no spreadsheet id", uri)
	}
	decoded, err := url.PathUnescape(rangeName)
	if err != nil {
		return "", "", fmt.Errorf("resource %q has a malformed range: %w", uri, err)
	}
	return id, decoded, nil
}
