package dto

// WindowInfo echoes the resolved query window and result size.
type WindowInfo struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
	TotalRecords int    `json:"total_records"`
}

// ErrorResult is the structured payload for a rejected query. Records is
// always an empty list so callers can branch on the presence of Error alone.
type ErrorResult struct {
	Error   string        `json:"error"`
	Code    string        `json:"code,omitempty"`
	Records []interface{} `json:"records"`
}

// NewErrorResult builds an ErrorResult.
func NewErrorResult(code, message string) ErrorResult {
	return ErrorResult{Error: message, Code: code, Records: []interface{}{}}
}

// Classroom is a room nested under its site.
type Classroom struct {
	RoomID       string  `json:"room_id"`
	RoomName     *string `json:"room_name"`
	RoomAgeGroup *string `json:"room_age_group"`
}

// SiteWithClassrooms is one site and its rooms.
type SiteWithClassrooms struct {
	SiteID      string      `json:"site_id"`
	SiteName    *string     `json:"site_name"`
	SiteAddress *string     `json:"site_address"`
	SiteZip     *string     `json:"site_zip"`
	Classrooms  []Classroom `json:"classrooms"`
}

// AttendanceLogQueryInfo echoes an attendance query.
type AttendanceLogQueryInfo struct {
	SiteID *string `json:"site_id"`
	RoomID *string `json:"room_id"`
	WindowInfo
}

// AttendanceLogRecord is one attendance log in output form.
type AttendanceLogRecord struct {
	FormID              string  `json:"form_id"`
	SiteID              *string `json:"site_id"`
	RoomID              *string `json:"room_id"`
	FormDate            *string `json:"form_date"`
	DOR                 *string `json:"dor"`
	LogType1            *int64  `json:"log_type1"`
	LogType2            *int64  `json:"log_type2"`
	LogDescription      *string `json:"log_description"`
	TimeIn              *string `json:"timein"`
	TimeOut             *string `json:"timeout"`
	Breakfast           *int64  `json:"breakfast"`
	Lunch               *int64  `json:"lunch"`
	PMSnack             *int64  `json:"pm_snack"`
	MealConfirmDatetime *string `json:"meal_confirm_datetime"`
}

// AttendanceLogResult is the attendance query response.
type AttendanceLogResult struct {
	QueryInfo AttendanceLogQueryInfo `json:"query_info"`
	Records   []AttendanceLogRecord  `json:"records"`
}

// SupportReportQueryInfo echoes a support report query.
type SupportReportQueryInfo struct {
	SiteID    *string `json:"site_id"`
	UserID    *string `json:"user_id"`
	StaffName *string `json:"staff_name"`
	WindowInfo
}

// SupportReportRecord is one support report in output form.
type SupportReportRecord struct {
	FormID          string  `json:"form_id"`
	UserID          *string `json:"user_id"`
	SiteID          *string `json:"site_id"`
	FormDate        *string `json:"form_date"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	SupportLog      *string `json:"support_log"`
	Category        *string `json:"category"`
	OnsiteRemote    *int64  `json:"onsite_remote"`
	Strategies      *string `json:"strategies"`
	StrategiesOther *string `json:"strategies_other"`
	Debrief         *string `json:"debrief"`
}

// SupportReportResult is the support report query response.
type SupportReportResult struct {
	QueryInfo SupportReportQueryInfo `json:"query_info"`
	Records   []SupportReportRecord  `json:"records"`
}

// MeasureDescriptor is a catalog measure referenced from a lesson plan slot.
type MeasureDescriptor struct {
	SlotCode    string  `json:"slot_code"`
	ReferenceID string  `json:"reference_id"`
	DisplayName *string `json:"display_name"`
	Category    *string `json:"category"`
}

// PreschoolAreas are curriculum areas recorded only on preschool plans.
type PreschoolAreas struct {
	Science *string `json:"science"`
	Math    *string `json:"l_math"`
	Writing *string `json:"writing"`
	Library *string `json:"library"`
	Other   *string `json:"other"`
}

// InfantToddlerAreas are curriculum areas recorded only on infant/toddler plans.
type InfantToddlerAreas struct {
	InfantModification *string `json:"infant_modification"`
	ScienceMath        *string `json:"science_math"`
}

// LessonPlanRecord is one lesson plan in output form. Exactly one of the
// embedded area groups is set, matching the queried lesson type.
type LessonPlanRecord struct {
	FormID                   string  `json:"form_id"`
	DOR                      *string `json:"dor"`
	SiteID                   *string `json:"site_id"`
	RoomID                   *string `json:"room_id"`
	WeekCount                *int64  `json:"week_count"`
	TeacherName              *string `json:"teacher_name"`
	StudyTopic               *string `json:"study_topic"`
	FocusWeek                *string `json:"focus_week"`
	IntentionalTeachingCards *string `json:"intentional_teaching_cards"`
	MightyMinutes            *string `json:"mighty_minutes"`
	Vocabulary               *string `json:"vocabulary"`
	Books                    *string `json:"books"`
	FamilyEngagement         *string `json:"family_engagement"`
	Individualizations       *string `json:"individualizations"`
	Blocks                   *string `json:"blocks"`
	WaterSensory             *string `json:"water_sensory"`
	Art                      *string `json:"art"`
	MusicMovement            *string `json:"music_movement"`
	DramaticPlay             *string `json:"dramatic_play"`
	Manipulatives            *string `json:"manipulatives"`
	OutdoorClassroom         *string `json:"outdoor_classroom"`
	Teachers                 *string `json:"teachers"`
	EnrollYear               *string `json:"enroll_year"`
	*PreschoolAreas
	*InfantToddlerAreas
	DRDPMeasures []MeasureDescriptor `json:"drdp_measures"`
}

// LessonPlanQueryInfo echoes a lesson plan query.
type LessonPlanQueryInfo struct {
	LessonType  string  `json:"lesson_type"`
	SiteID      *string `json:"site_id"`
	RoomID      *string `json:"room_id"`
	TeacherName *string `json:"teacher_name"`
	WindowInfo
}

// LessonPlanResult is the lesson plan query response.
type LessonPlanResult struct {
	QueryInfo LessonPlanQueryInfo `json:"query_info"`
	Records   []LessonPlanRecord  `json:"records"`
}

// MeasureScore pairs a raw DRDP score with its decoded level.
type MeasureScore struct {
	NumericValue     *float64 `json:"numeric_value"`
	LevelDescription *string  `json:"level_description"`
}

// AssessmentRecord is one DRDP assessment in output form. Measurements is
// keyed by lower-case measure column, e.g. "atl_reg_1".
type AssessmentRecord struct {
	FormID         string                  `json:"form_id"`
	EnrollYear     *string                 `json:"enroll_year"`
	ChildID        *string                 `json:"child_id"`
	DOR            *string                 `json:"dor"`
	SiteID         *string                 `json:"site_id"`
	RoomID         *string                 `json:"room_id"`
	SubmitDatetime *string                 `json:"submit_datetime"`
	Measurements   map[string]MeasureScore `json:"measurements"`
}

// AssessmentQueryInfo echoes an assessment query.
type AssessmentQueryInfo struct {
	SiteID  *string `json:"site_id"`
	RoomID  *string `json:"room_id"`
	ChildID *string `json:"child_id"`
	WindowInfo
}

// AssessmentResult is the assessment query response.
type AssessmentResult struct {
	QueryInfo AssessmentQueryInfo `json:"query_info"`
	Records   []AssessmentRecord  `json:"records"`
}
