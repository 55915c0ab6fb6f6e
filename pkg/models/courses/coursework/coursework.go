// Package coursework models assignments and questions posted to a course.
package coursework

import (
	"fmt"
	"time"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

// CourseWorkState is the publication state of course work.
type CourseWorkState string

const (
	CourseWorkStateUnspecified CourseWorkState = "COURSE_WORK_STATE_UNSPECIFIED"
	CourseWorkStatePublished   CourseWorkState = "PUBLISHED"
	CourseWorkStateDraft       CourseWorkState = "DRAFT"
	CourseWorkStateDeleted     CourseWorkState = "DELETED"
)

// UnmarshalText rejects values outside the documented set.
func (s *CourseWorkState) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		CourseWorkStateUnspecified,
		CourseWorkStatePublished,
		CourseWorkStateDraft,
		CourseWorkStateDeleted,
	)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SubmissionModificationMode controls when students may change a submission.
type SubmissionModificationMode string

const (
	SubmissionModificationModeUnspecified   SubmissionModificationMode = "SUBMISSION_MODIFICATION_MODE_UNSPECIFIED"
	SubmissionModificationModeUntilTurnedIn SubmissionModificationMode = "MODIFIABLE_UNTIL_TURNED_IN"
	SubmissionModificationModeModifiable    SubmissionModificationMode = "MODIFIABLE"
)

// UnmarshalText rejects values outside the documented set.
func (m *SubmissionModificationMode) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		SubmissionModificationModeUnspecified,
		SubmissionModificationModeUntilTurnedIn,
		SubmissionModificationModeModifiable,
	)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Assignment holds details only present on ASSIGNMENT course work.
type Assignment struct {
	// Shared with teachers; only visible to them and domain administrators.
	StudentWorkFolder *models.DriveFolder `json:"studentWorkFolder,omitempty"`
}

// MultipleChoiceQuestion holds the possible answers of a multiple choice
// question.
type MultipleChoiceQuestion struct {
	Choices []string `json:"choices,omitempty"`
}

// CourseWork is an assignment or question as returned by the API.
type CourseWork struct {
	CourseID                   string                            `json:"courseId"`
	ID                         string                            `json:"id" validate:"required"`
	Title                      string                            `json:"title"`
	Description                *string                           `json:"description,omitempty"`
	Materials                  []models.Material                 `json:"materials,omitempty"`
	State                      *CourseWorkState                  `json:"state,omitempty"`
	AlternateLink              string                            `json:"alternateLink,omitempty"`
	CreationTime               time.Time                         `json:"creationTime"`
	UpdateTime                 time.Time                         `json:"updateTime"`
	DueDate                    *Date                             `json:"dueDate,omitempty"`
	DueTime                    *TimeOfDay                        `json:"dueTime,omitempty"`
	ScheduledTime              *time.Time                        `json:"scheduledTime,omitempty"`
	MaxPoints                  *float64                          `json:"maxPoints,omitempty"`
	WorkType                   models.CourseWorkType             `json:"workType,omitempty"`
	AssociatedWithDeveloper    bool                              `json:"associatedWithDeveloper,omitempty"`
	AssigneeMode               *models.AssigneeMode              `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions  *models.IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
	SubmissionModificationMode *SubmissionModificationMode       `json:"submissionModificationMode,omitempty"`
	CreatorUserID              string                            `json:"creatorUserId,omitempty"`
	TopicID                    string                            `json:"topicId,omitempty"`
	GradeCategory              *models.GradeCategory             `json:"gradeCategory,omitempty"`
	Assignment                 *Assignment                       `json:"assignment,omitempty"`
	MultipleChoiceQuestion     *MultipleChoiceQuestion           `json:"multipleChoiceQuestion,omitempty"`
}

// Due returns the due instant in UTC, false when no due date is set.
func (w CourseWork) Due() (time.Time, bool) {
	if w.DueDate == nil {
		return time.Time{}, false
	}
	return w.DueDate.At(w.DueTime), true
}

// Ungraded reports whether the work carries no points.
func (w CourseWork) Ungraded() bool {
	return w.MaxPoints == nil || *w.MaxPoints == 0
}

// CourseWorkCreate is the body of a course work creation request.
type CourseWorkCreate struct {
	Title                      string                            `json:"title" validate:"required,min=1,max=3000"`
	Description                *string                           `json:"description,omitempty" validate:"omitempty,max=30000"`
	Materials                  []models.Material                 `json:"materials,omitempty"`
	State                      *CourseWorkState                  `json:"state,omitempty"`
	DueDate                    *Date                             `json:"dueDate,omitempty"`
	DueTime                    *TimeOfDay                        `json:"dueTime,omitempty"`
	ScheduledTime              *time.Time                        `json:"scheduledTime,omitempty"`
	MaxPoints                  *float64                          `json:"maxPoints,omitempty" validate:"omitempty,gte=0"`
	WorkType                   models.CourseWorkType             `json:"workType" validate:"required"`
	AssigneeMode               *models.AssigneeMode              `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions  *models.IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
	SubmissionModificationMode *SubmissionModificationMode       `json:"submissionModificationMode,omitempty"`
	TopicID                    *string                           `json:"topicId,omitempty"`
	GradeCategory              *models.GradeCategory             `json:"gradeCategory,omitempty"`
	MultipleChoiceQuestion     *MultipleChoiceQuestion           `json:"multipleChoiceQuestion,omitempty"`
}

// Check enforces the rules spanning several fields: the work type must be
// specified, a due time needs a due date, choices go with
// MULTIPLE_CHOICE_QUESTION only, and the assignee pairing holds.
func (w CourseWorkCreate) Check() error {
	if w.WorkType == models.CourseWorkTypeUnspecified {
		return validationError("workType", "work type must be specified")
	}
	if w.DueTime != nil && w.DueDate == nil {
		return validationError("dueTime", "requires dueDate")
	}

	isMultipleChoice := w.WorkType == models.CourseWorkTypeMultipleChoiceQuestion
	switch {
	case isMultipleChoice && (w.MultipleChoiceQuestion == nil || len(w.MultipleChoiceQuestion.Choices) == 0):
		return validationError("multipleChoiceQuestion", "choices are required for MULTIPLE_CHOICE_QUESTION")
	case !isMultipleChoice && w.MultipleChoiceQuestion != nil:
		return validationError("multipleChoiceQuestion", fmt.Sprintf("not allowed for %s", w.WorkType))
	}

	mode := models.AssigneeModeAllStudents
	if w.AssigneeMode != nil {
		mode = *w.AssigneeMode
	}
	if err := models.CheckAssignees(mode, w.IndividualStudentsOptions != nil, "individualStudentsOptions"); err != nil {
		return err
	}
	return models.CheckMaterials(w.Materials, "materials")
}

func validationError(field, message string) error {
	return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, message), field)
}

// CourseWorkModify is a partial update of course work. Only drafts may change
// state, and only to PUBLISHED.
type CourseWorkModify struct {
	Title                      *string                     `json:"title,omitempty" validate:"omitempty,min=1,max=3000"`
	Description                *string                     `json:"description,omitempty" validate:"omitempty,max=30000"`
	State                      *CourseWorkState            `json:"state,omitempty"`
	DueDate                    *Date                       `json:"dueDate,omitempty"`
	DueTime                    *TimeOfDay                  `json:"dueTime,omitempty"`
	ScheduledTime              *time.Time                  `json:"scheduledTime,omitempty"`
	MaxPoints                  *float64                    `json:"maxPoints,omitempty" validate:"omitempty,gte=0"`
	SubmissionModificationMode *SubmissionModificationMode `json:"submissionModificationMode,omitempty"`
	TopicID                    *string                     `json:"topicId,omitempty"`
	GradeCategory              *models.GradeCategory       `json:"gradeCategory,omitempty"`
}

// UpdateMask lists the fields this patch sets.
func (w CourseWorkModify) UpdateMask() []string {
	return models.UpdateMask(w)
}

// ModifyCourseWorkAssigneesRequest changes who course work is assigned to.
type ModifyCourseWorkAssigneesRequest = models.ModifyAssigneesRequest
