package models

import "time"

// AttendanceLog is a daily attendance log entry for a site or classroom.
type AttendanceLog struct {
	FormID              string     `db:"form_id"`
	DOR                 *time.Time `db:"dor"`
	SiteID              *string    `db:"site_id"`
	RoomID              *string    `db:"room_id"`
	FormDate            *time.Time `db:"form_date"`
	LogType1            *int64     `db:"log_type1"`
	LogType2            *int64     `db:"log_type2"`
	LogDescription      *string    `db:"log_description"`
	TimeIn              *string    `db:"timein"`
	TimeOut             *string    `db:"timeout"`
	Breakfast           *int64     `db:"breakfast"`
	Lunch               *int64     `db:"lunch"`
	PMSnack             *int64     `db:"pm_snack"`
	MealConfirmDatetime *time.Time `db:"meal_confirm_datetime"`
}

// AttendanceLogFilter defines query filters.
type AttendanceLogFilter struct {
	SiteID    string
	RoomID    string
	DateFrom  time.Time
	DateUntil time.Time // exclusive
	Limit     int
}

// AttendanceLogsTable maps the attendance log storage.
var AttendanceLogsTable = Table{
	Name: "dailyattendancelog_new",
	Columns: []Column{
		Col("Form_ID"), Col("DOR"), Col("Site_ID"), Col("Room_ID"), Col("Form_Date"),
		Col("Log_Type1"), Col("Log_Type2"), Col("Log_Description"), Col("Timein"), Col("Timeout"),
		Col("Breakfast"), Col("Lunch"), Col("PM_Snack"), Col("Meal_Confirm_Datetime"),
	},
}
