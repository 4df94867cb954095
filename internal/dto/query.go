package dto

// SiteQuery filters the site hierarchy.
type SiteQuery struct {
	SiteName string `form:"site_name" json:"site_name" validate:"omitempty,max=255"`
}

// AttendanceLogQuery is the request for attendance log queries.
type AttendanceLogQuery struct {
	SiteID    string  `form:"site_id" json:"site_id" validate:"omitempty,max=64"`
	RoomID    string  `form:"room_id" json:"room_id" validate:"omitempty,max=64"`
	StartDate *string `form:"start_date" json:"start_date"`
	EndDate   *string `form:"end_date" json:"end_date"`
	Limit     int     `form:"limit" json:"limit"`
}

// SupportReportQuery is the request for support report queries. UserID is
// matched exactly, StaffName as a substring of the same field.
type SupportReportQuery struct {
	SiteID    string  `form:"site_id" json:"site_id" validate:"omitempty,max=64"`
	UserID    string  `form:"user_id" json:"user_id" validate:"omitempty,max=255"`
	StaffName string  `form:"staff_name" json:"staff_name" validate:"omitempty,max=255"`
	StartDate *string `form:"start_date" json:"start_date"`
	EndDate   *string `form:"end_date" json:"end_date"`
	Limit     int     `form:"limit" json:"limit"`
}

// LessonPlanQuery is the request for lesson plan queries. LessonType is
// "preschool" or "it", case-insensitive.
type LessonPlanQuery struct {
	LessonType  string  `form:"lesson_type" json:"lesson_type"`
	SiteID      string  `form:"site_id" json:"site_id" validate:"omitempty,max=64"`
	RoomID      string  `form:"room_id" json:"room_id" validate:"omitempty,max=64"`
	TeacherName string  `form:"teacher_name" json:"teacher_name" validate:"omitempty,max=255"`
	StartDate   *string `form:"start_date" json:"start_date"`
	EndDate     *string `form:"end_date" json:"end_date"`
	Limit       int     `form:"limit" json:"limit"`
}

// AssessmentQuery is the request for DRDP assessment queries.
type AssessmentQuery struct {
	SiteID    string  `form:"site_id" json:"site_id" validate:"omitempty,max=64"`
	RoomID    string  `form:"room_id" json:"room_id" validate:"omitempty,max=64"`
	ChildID   string  `form:"child_id" json:"child_id" validate:"omitempty,max=64"`
	StartDate *string `form:"start_date" json:"start_date"`
	EndDate   *string `form:"end_date" json:"end_date"`
	Limit     int     `form:"limit" json:"limit"`
}
