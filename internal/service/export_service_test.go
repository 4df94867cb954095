package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

func TestExportServiceRendersCSV(t *testing.T) {
	svc := NewExportService(nil)
	svc.now = fixedClock
	records := []dto.SupportReportRecord{{FormID: "R1", UserID: strPtr("coach@example.org")}}

	file, err := svc.Render("CSV", "support_reports", records)
	require.NoError(t, err)
	assert.Equal(t, "support_reports-20240315-143000.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "form_id,"))
	assert.True(t, strings.HasPrefix(lines[1], "R1,coach@example.org"))
}

func TestExportServiceRendersPDF(t *testing.T) {
	svc := NewExportService(nil)
	file, err := svc.Render("pdf", "attendance_logs", []dto.AttendanceLogRecord{{FormID: "F1"}})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(nil)
	_, err := svc.Render("xlsx", "sites", []dto.SiteWithClassrooms{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
