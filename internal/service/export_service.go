package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
	"github.com/noah-isme/kmq-gateway/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type renderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders query records as downloadable files.
type ExportService struct {
	renderers map[string]renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService with the CSV and PDF renderers.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		renderers: map[string]renderer{
			ExportFormatCSV: export.NewCSVExporter(),
			ExportFormatPDF: export.NewPDFExporter(),
		},
		logger: logger,
		now:    time.Now,
	}
}

// Render flattens records and renders them in format. name titles the
// document and prefixes the file name.
func (s *ExportService) Render(format, name string, records interface{}) (*ExportFile, error) {
	r, ok := s.renderers[strings.ToLower(format)]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be one of csv, pdf")
	}
	data, err := export.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", name, err)
	}
	body, err := r.Render(data, strings.ReplaceAll(name, "_", " "))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	s.logger.Debug("export rendered",
		zap.String("name", name),
		zap.String("format", r.Extension()),
		zap.Int("rows", len(data.Rows)),
		zap.Int("bytes", len(body)),
	)
	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", name, s.now().Format("20060102-150405"), r.Extension()),
		ContentType: r.ContentType(),
		Data:        body,
	}, nil
}
