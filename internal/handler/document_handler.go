package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/middleware"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/response"
)

type documentService interface {
	ListSpreadsheets(ctx context.Context, req dto.ListSpreadsheetsRequest) ([]dto.SpreadsheetSummary, error)
	ReadSheet(ctx context.Context, req dto.ReadSheetRequest) (*dto.SheetValues, error)
	CreateSpreadsheet(ctx context.Context, req dto.CreateSpreadsheetRequest) (*dto.CreatedSpreadsheet, error)
	CreateForm(ctx context.Context, req dto.CreateFormRequest) (*dto.CreatedForm, error)
}

// DocumentHandler exposes spreadsheet and form operations.
type DocumentHandler struct {
	docs documentService
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(docs documentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// ListSpreadsheets godoc
// @Summary List spreadsheets
// @Tags Documents
// @Produce json
// @Param max_results query int false "Page size, default 20"
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /documents/spreadsheets [get]
func (h *DocumentHandler) ListSpreadsheets(c *gin.Context) {
	var req dto.ListSpreadsheetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	files, err := h.docs.ListSpreadsheets(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, files, middleware.Meta(c))
}

// ReadSheet godoc
// @Summary Read spreadsheet values
// @Tags Documents
// @Produce json
// @Param id path string true "Spreadsheet ID"
// @Param range query string false "A1 range, default Sheet1"
// @Success 200 {object} response.Envelope
// @Router /documents/spreadsheets/{id}/values [get]
func (h *DocumentHandler) ReadSheet(c *gin.Context) {
	values, err := h.docs.ReadSheet(c.Request.Context(), dto.ReadSheetRequest{
		SpreadsheetID: c.Param("id"),
		RangeName:     c.Query("range"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, values, middleware.Meta(c))
}

// CreateSpreadsheet godoc
// @Summary Create a spreadsheet
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body dto.CreateSpreadsheetRequest true "Spreadsheet title"
// @Success 201 {object} response.Envelope
// @Router /documents/spreadsheets [post]
func (h *DocumentHandler) CreateSpreadsheet(c *gin.Context) {
	var req dto.CreateSpreadsheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	sheet, err := h.docs.CreateSpreadsheet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sheet)
}

// CreateForm godoc
// @Summary Create a form
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body dto.CreateFormRequest true "Form title and description"
// @Success 201 {object} response.Envelope
// @Router /documents/forms [post]
func (h *DocumentHandler) CreateForm(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	form, err := h.docs.CreateForm(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}
