package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/kmq-gateway/internal/models"
)

// selectBuilder composes a filtered, ordered, capped SELECT. Placeholders are
// written as '?' and rebound for the active driver by the caller.
type selectBuilder struct {
	table   models.Table
	where   []string
	args    []interface{}
	orderBy string
	limit   int
}

func newSelect(table models.Table) *selectBuilder {
	return &selectBuilder{table: table}
}

// Eq adds "column = value" unless value is empty.
func (b *selectBuilder) Eq(column, value string) *selectBuilder {
	if value == "" {
		return b
	}
	return b.Where(column+" = ?", value)
}

// Contains adds a substring match unless value is empty.
func (b *selectBuilder) Contains(column, value string) *selectBuilder {
	if value == "" {
		return b
	}
	return b.Where(column+" LIKE ?", "%"+value+"%")
}

// Where adds a raw condition.
func (b *selectBuilder) Where(cond string, args ...interface{}) *selectBuilder {
	b.where = append(b.where, cond)
	b.args = append(b.args, args...)
	return b
}

// OrderDesc sorts newest first on column.
func (b *selectBuilder) OrderDesc(column string) *selectBuilder {
	b.orderBy = column + " DESC"
	return b
}

// Limit caps the row count; non-positive values leave the query uncapped.
func (b *selectBuilder) Limit(n int) *selectBuilder {
	b.limit = n
	return b
}

// Build renders the statement and its arguments.
func (b *selectBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.table.SelectList())
	sb.WriteString(" FROM ")
	sb.WriteString(b.table.Name)
	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}
	return sb.String(), b.args
}

// dateArg binds a calendar date as YYYY-MM-DD so the comparison does not
// depend on the driver's time zone conversion.
func dateArg(t time.Time) string {
	return t.Format("2006-01-02")
}
