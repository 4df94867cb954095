package models

import "time"

// SupportReport is a center support visit log entry.
type SupportReport struct {
	FormID          string     `db:"form_id"`
	UserID          *string    `db:"user_id"`
	SiteID          *string    `db:"site_id"`
	FormDate        *time.Time `db:"form_date"`
	StartTime       *string    `db:"start_time"`
	EndTime         *string    `db:"end_time"`
	SupportLog      *string    `db:"support_log"`
	Category        *string    `db:"category"`
	OnsiteRemote    *int64     `db:"onsiteremote"`
	Strategies      *string    `db:"strategies"`
	StrategiesOther *string    `db:"strategies_other"`
	Debrief         *string    `db:"debrief"`
}

// SupportReportFilter defines query filters. UserID is an exact match,
// StaffName a substring match against the same column.
type SupportReportFilter struct {
	SiteID    string
	UserID    string
	StaffName string
	DateFrom  time.Time
	DateUntil time.Time // exclusive
	Limit     int
}

// SupportReportsTable maps the support report storage.
var SupportReportsTable = Table{
	Name: "centersupportreport",
	Columns: []Column{
		Col("Form_ID"), Col("User_ID"), Col("Site_ID"), Col("Form_Date"), Col("Start_Time"), Col("End_Time"),
		Col("Support_Log"), Col("Category"), Col("OnsiteRemote"), Col("Strategies"), Col("Strategies_Other"),
		Col("Debrief"),
	},
}
