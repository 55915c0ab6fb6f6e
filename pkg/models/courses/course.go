package courses

import (
	"time"

	"github.com/randomairborne/google-classroom/pkg/models"
)

// CourseState is the lifecycle state of a course.
type CourseState string

const (
	CourseStateUnspecified CourseState = "COURSE_STATE_UNSPECIFIED"
	CourseStateActive      CourseState = "ACTIVE"
	CourseStateArchived    CourseState = "ARCHIVED"
	// CourseStateProvisioned is what the API assigns when a course is created
	// without a state.
	CourseStateProvisioned CourseState = "PROVISIONED"
	CourseStateDeclined    CourseState = "DECLINED"
	CourseStateSuspended   CourseState = "SUSPENDED"
)

// UnmarshalText rejects values outside the documented set.
func (s *CourseState) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		CourseStateUnspecified,
		CourseStateActive,
		CourseStateArchived,
		CourseStateProvisioned,
		CourseStateDeclined,
		CourseStateSuspended,
	)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Course is a Classroom course as returned by the API.
type Course struct {
	// Assigned by Classroom; cannot be changed after creation.
	ID                 string    `json:"id" validate:"required"`
	Name               string    `json:"name" validate:"required"`
	Section            *string   `json:"section,omitempty"`
	DescriptionHeading *string   `json:"descriptionHeading,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Room               *string   `json:"room,omitempty"`
	OwnerID            OwnerID   `json:"ownerId" validate:"required"`
	CreationTime       time.Time `json:"creationTime"`
	// Read only; naming it in an update mask is an error.
	UpdateTime time.Time `json:"updateTime"`
	// Read only; naming it in an update mask is an error.
	EnrollmentCode    string       `json:"enrollmentCode,omitempty"`
	CourseState       *CourseState `json:"courseState,omitempty"`
	AlternateLink     string       `json:"alternateLink,omitempty"`
	TeacherGroupEmail string       `json:"teacherGroupEmail,omitempty"`
	CourseGroupEmail  string       `json:"courseGroupEmail,omitempty"`
	// Only set for teachers of the course and domain administrators.
	TeacherFolder     *models.DriveFolder `json:"teacherFolder,omitempty"`
	GuardiansEnabled  bool                `json:"guardiansEnabled"`
	CalendarID        string              `json:"calendarId,omitempty"`
	GradebookSettings *GradebookSettings  `json:"gradebookSettings,omitempty"`
}

// State returns the course state, PROVISIONED when the payload omitted it.
func (c Course) State() CourseState {
	if c.CourseState == nil {
		return CourseStateProvisioned
	}
	return *c.CourseState
}

// CourseCreate is the body of a course creation request.
type CourseCreate struct {
	// Optionally an alias string; Classroom creates the matching alias and
	// still assigns the real ID.
	ID                 *string      `json:"id,omitempty"`
	Name               string       `json:"name" validate:"required,min=1,max=750"`
	Section            *string      `json:"section,omitempty" validate:"omitempty,max=2800"`
	DescriptionHeading *string      `json:"descriptionHeading,omitempty" validate:"omitempty,max=3600"`
	Description        *string      `json:"description,omitempty" validate:"omitempty,max=30000"`
	Room               *string      `json:"room,omitempty" validate:"omitempty,max=650"`
	OwnerID            OwnerID      `json:"ownerId" validate:"required"`
	CourseState        *CourseState `json:"courseState,omitempty"`
}

// EffectiveState returns the state the API will assign: the requested one, or
// PROVISIONED when none is set.
func (c CourseCreate) EffectiveState() CourseState {
	if c.CourseState == nil {
		return CourseStateProvisioned
	}
	return *c.CourseState
}

// CourseModify is a partial update of a course. Unset fields are omitted.
type CourseModify struct {
	Name               *string      `json:"name,omitempty" validate:"omitempty,min=1,max=750"`
	Section            *string      `json:"section,omitempty" validate:"omitempty,max=2800"`
	DescriptionHeading *string      `json:"descriptionHeading,omitempty" validate:"omitempty,max=3600"`
	Description        *string      `json:"description,omitempty" validate:"omitempty,max=30000"`
	Room               *string      `json:"room,omitempty" validate:"omitempty,max=650"`
	OwnerID            *OwnerID     `json:"ownerId,omitempty"`
	CourseState        *CourseState `json:"courseState,omitempty"`
}

// UpdateMask lists the fields this patch sets.
func (c CourseModify) UpdateMask() []string {
	return models.UpdateMask(c)
}
