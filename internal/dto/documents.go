package dto

// ListSpreadsheetsRequest pages the caller's spreadsheets.
type ListSpreadsheetsRequest struct {
	MaxResults int `form:"max_results" json:"max_results" validate:"omitempty,min=1,max=1000"`
}

// ReadSheetRequest addresses a range within a spreadsheet. RangeName
// defaults to "Sheet1".
type ReadSheetRequest struct {
	SpreadsheetID string `form:"spreadsheet_id" json:"spreadsheet_id" validate:"required"`
	RangeName     string `form:"range_name" json:"range_name"`
}

// CreateSpreadsheetRequest names a new spreadsheet.
type CreateSpreadsheetRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// CreateFormRequest names a new form.
type CreateFormRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

// SpreadsheetSummary identifies a spreadsheet.
type SpreadsheetSummary struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	URL  string `json:"url"`
}

// SheetValues is the raw cell grid of a range.
type SheetValues struct {
	SpreadsheetID string          `json:"spreadsheet_id"`
	Range         string          `json:"range"`
	Values        [][]interface{} `json:"values"`
}

// CreatedSpreadsheet identifies a newly created spreadsheet.
type CreatedSpreadsheet struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	URL           string `json:"url"`
}

// CreatedForm identifies a newly created form.
type CreatedForm struct {
	FormID string `json:"form_id"`
	URL    string `json:"url"`
}
