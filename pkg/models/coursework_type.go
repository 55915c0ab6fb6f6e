package models

// CourseWorkType is the kind of a piece of course work.
type CourseWorkType string

const (
	// CourseWorkTypeUnspecified is never returned.
	CourseWorkTypeUnspecified            CourseWorkType = "COURSE_WORK_TYPE_UNSPECIFIED"
	CourseWorkTypeAssignment             CourseWorkType = "ASSIGNMENT"
	CourseWorkTypeShortAnswerQuestion    CourseWorkType = "SHORT_ANSWER_QUESTION"
	CourseWorkTypeMultipleChoiceQuestion CourseWorkType = "MULTIPLE_CHOICE_QUESTION"
)

// UnmarshalText rejects values outside the documented set.
func (t *CourseWorkType) UnmarshalText(text []byte) error {
	v, err := ParseEnum(text,
		CourseWorkTypeUnspecified,
		CourseWorkTypeAssignment,
		CourseWorkTypeShortAnswerQuestion,
		CourseWorkTypeMultipleChoiceQuestion,
	)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
