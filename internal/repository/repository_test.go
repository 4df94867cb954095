package repository

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	labels []string
}

func (r *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = append(r.labels, label)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() {
		_ = sqlxDB.Close()
	})
	return NewStore(sqlxDB, true), mock
}

func TestStoreSessionCommitsOnSuccess(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectCommit()

	err := store.Session(context.Background(), func(q Queryer) error {
		var one int
		return q.GetContext(context.Background(), &one, "SELECT 1")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSessionRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.Session(context.Background(), func(Queryer) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSessionBeginFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	called := false
	err := store.Session(context.Background(), func(Queryer) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin session")
	assert.False(t, called)
}

func TestSelectBuilderSkipsEmptyFilters(t *testing.T) {
	query, args := newSelect(testTable).
		Eq("Site_ID", "").
		Contains("Name", "").
		OrderDesc("DOR").
		Build()
	assert.Equal(t, "SELECT Site_ID AS site_id, DOR AS dor FROM t ORDER BY DOR DESC", query)
	assert.Empty(t, args)
}

func TestSelectBuilderComposesConditions(t *testing.T) {
	query, args := newSelect(testTable).
		Eq("Site_ID", "S1").
		Contains("Name", "ann").
		Where("DOR >= ? AND DOR < ?", "2024-03-01", "2024-03-08").
		OrderDesc("DOR").
		Limit(25).
		Build()
	assert.Equal(t, "SELECT Site_ID AS site_id, DOR AS dor FROM t WHERE Site_ID = ? AND Name LIKE ? AND DOR >= ? AND DOR < ? ORDER BY DOR DESC LIMIT 25", query)
	assert.Equal(t, []interface{}{"S1", "%ann%", "2024-03-01", "2024-03-08"}, args)
}

func TestDateArgIgnoresZone(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	assert.Equal(t, "2024-03-08", dateArg(time.Date(2024, 3, 8, 0, 0, 0, 0, loc)))
}
