package models

import (
	"strings"
	"time"
)

// LessonType discriminates the two lesson plan record kinds.
type LessonType string

const (
	LessonTypePreschool     LessonType = "preschool"
	LessonTypeInfantToddler LessonType = "it"
)

// ParseLessonType resolves a caller-supplied discriminator case-insensitively.
func ParseLessonType(raw string) (LessonType, bool) {
	switch LessonType(strings.ToLower(strings.TrimSpace(raw))) {
	case LessonTypePreschool:
		return LessonTypePreschool, true
	case LessonTypeInfantToddler:
		return LessonTypeInfantToddler, true
	default:
		return "", false
	}
}

// LessonPlan holds the union of both variants' columns. Fields that the
// selected variant does not store stay nil.
type LessonPlan struct {
	FormID                   string     `db:"form_id"`
	DOR                      *time.Time `db:"dor"`
	SiteID                   *string    `db:"site_id"`
	RoomID                   *string    `db:"room_id"`
	WeekCount                *int64     `db:"weekcount"`
	TeacherName              *string    `db:"teacher_name"`
	StudyTopic               *string    `db:"study_topic"`
	FocusWeek                *string    `db:"focus_week"`
	IntentionalTeachingCards *string    `db:"intentionalteachingcards"`
	MightyMinutes            *string    `db:"mightyminutes"`
	Vocabulary               *string    `db:"vocabulary"`
	Books                    *string    `db:"books"`
	FamilyEngagement         *string    `db:"familyengagement"`
	Individualizations       *string    `db:"individualizations"`
	Blocks                   *string    `db:"blocks"`
	WaterSensory             *string    `db:"watersensory"`
	Art                      *string    `db:"art"`
	MusicMovement            *string    `db:"musicmovement"`
	DramaticPlay             *string    `db:"dramaticplay"`
	Manipulatives            *string    `db:"manipulatives"`
	OutdoorClassroom         *string    `db:"outdoorclassroom"`
	Teachers                 *string    `db:"teachers"`
	EnrollYear               *string    `db:"enroll_year"`

	// preschool only
	Science *string `db:"science"`
	Math    *string `db:"l_math"`
	Writing *string `db:"writing"`
	Library *string `db:"library"`
	Other   *string `db:"other"`

	// infant/toddler only
	InfantModification *string `db:"infant_modification"`
	ScienceMath        *string `db:"sciencemath"`
}

// LessonPlanFilter defines query filters.
type LessonPlanFilter struct {
	Type        LessonType
	SiteID      string
	RoomID      string
	TeacherName string
	DateFrom    time.Time
	DateUntil   time.Time // exclusive
	Limit       int
}

var lessonPlanCommon = []Column{
	Col("Form_ID"), Col("DOR"), Col("Site_ID"), Col("Room_ID"), Col("WeekCount"), Col("Teacher_Name"),
	Col("Study_Topic"), Col("Focus_Week"), Col("IntentionalTeachingCards"), Col("MightyMinutes"),
	Col("Vocabulary"), Col("Books"), Col("FamilyEngagement"), Col("Individualizations"), Col("Blocks"),
	Col("WaterSensory"), Col("Art"), Col("MusicMovement"), Col("DramaticPlay"), Col("Manipulatives"),
	Col("OutdoorClassroom"), Col("Teachers"), Col("Enroll_Year"),
}

// LessonPlanTables maps each variant to its storage.
var LessonPlanTables = map[LessonType]Table{
	LessonTypePreschool: Table{Name: "lessonplans_2324_preschool", Columns: lessonPlanCommon}.With(
		Col("Science"), Col("L_Math"), Col("Writing"), Col("Library"), Col("Other"),
	),
	LessonTypeInfantToddler: Table{Name: "lessonplans_2324_it", Columns: lessonPlanCommon}.With(
		Col("Infant_Modification"), Col("ScienceMath"),
	),
}

// LessonPlanDetail is one slot line of a lesson plan.
type LessonPlanDetail struct {
	LogID   string  `db:"log_id"`
	FormID  *string `db:"form_id"`
	SlotNo  *string `db:"p_no"`
	Content *string `db:"p_content"`
}

// MeasureSlotPattern selects detail lines that carry measure references.
const MeasureSlotPattern = "P5_%"

// LessonPlanDetailsTable maps the plan detail storage.
var LessonPlanDetailsTable = Table{
	Name:    "lessonplans_detail",
	Columns: []Column{Col("Log_ID"), Col("Form_ID"), Col("P_No"), Col("P_Content")},
}
