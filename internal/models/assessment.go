package models

import (
	"time"

	"github.com/noah-isme/kmq-gateway/pkg/drdp"
)

// AssessmentRecord is a DRDP assessment submission. Scores aligns with
// drdp.Measures; each score is independently nullable.
type AssessmentRecord struct {
	FormID         string
	EnrollYear     *string
	ChildID        *string
	DOR            *time.Time
	SiteID         *string
	RoomID         *string
	SubmitDatetime *time.Time
	Scores         []*float64
}

// ScanTargets returns destinations in AssessmentsTable column order.
func (r *AssessmentRecord) ScanTargets() []interface{} {
	if len(r.Scores) != len(drdp.Measures) {
		r.Scores = make([]*float64, len(drdp.Measures))
	}
	targets := []interface{}{&r.FormID, &r.EnrollYear, &r.ChildID, &r.DOR, &r.SiteID, &r.RoomID, &r.SubmitDatetime}
	for i := range r.Scores {
		targets = append(targets, &r.Scores[i])
	}
	return targets
}

// AssessmentFilter defines query filters.
type AssessmentFilter struct {
	SiteID    string
	RoomID    string
	ChildID   string
	DateFrom  time.Time
	DateUntil time.Time // exclusive
	Limit     int
}

// MinEnrollYear is the oldest program year returned by assessment queries.
const MinEnrollYear = "20-21"

// AssessmentsTable maps the assessment storage.
var AssessmentsTable = buildAssessmentsTable()

func buildAssessmentsTable() Table {
	cols := []Column{
		Col("Form_ID"), Col("Enroll_Year"), Col("Child_ID"), Col("DOR"), Col("Site_ID"), Col("Room_ID"),
		Col("Submit_Datetime"),
	}
	for _, m := range drdp.Measures {
		cols = append(cols, Col(m))
	}
	return Table{Name: "drdp_record", Columns: cols}
}
