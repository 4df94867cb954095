package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/pkg/config"
	"github.com/noah-isme/kmq-gateway/pkg/database"
)

func TestSupportReportServiceAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "kmq.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	db.MustExec(`CREATE TABLE centersupportreport (
		Form_ID TEXT PRIMARY KEY,
		User_ID TEXT,
		Site_ID TEXT,
		Form_Date DATE,
		Start_Time TEXT,
		End_Time TEXT,
		Support_Log TEXT,
		Category TEXT,
		OnsiteRemote INTEGER,
		Strategies TEXT,
		Strategies_Other TEXT,
		Debrief TEXT
	)`)
	db.MustExec(`INSERT INTO centersupportreport (Form_ID, User_ID, Site_ID, Form_Date, OnsiteRemote)
		VALUES ('R-today', 'coach@example.org', 'S1', '2024-03-15', 1),
		       ('R-old', 'coach@example.org', 'S1', '2024-03-05', 0)`)

	metrics := NewMetricsService()
	svc := NewSupportReportService(
		repository.NewStore(db, false),
		repository.NewSupportReportRepository(metrics),
		nil,
		QueryConfig{},
		nil,
	)
	svc.now = fixedClock

	result, err := svc.Query(ctx, dto.SupportReportQuery{SiteID: "S1"})
	require.NoError(t, err)

	assert.Equal(t, 7, result.QueryInfo.DurationDays)
	assert.Equal(t, 1, result.QueryInfo.TotalRecords)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "R-today", result.Records[0].FormID)
	assert.Equal(t, "2024-03-15", *result.Records[0].FormDate)
	assert.Equal(t, int64(1), *result.Records[0].OnsiteRemote)
	assert.Equal(t, uint64(1), metrics.Snapshot().DBQueryCount)
}
