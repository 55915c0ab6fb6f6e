// Package invitations models invitations to join a course.
package invitations

import (
	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
)

// CourseRole is the role a user is invited to take in a course.
type CourseRole string

const (
	CourseRoleUnspecified CourseRole = "COURSE_ROLE_UNSPECIFIED"
	CourseRoleStudent     CourseRole = "STUDENT"
	CourseRoleTeacher     CourseRole = "TEACHER"
	CourseRoleOwner       CourseRole = "OWNER"
)

// UnmarshalText rejects values outside the documented set.
func (r *CourseRole) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text, CourseRoleUnspecified, CourseRoleStudent, CourseRoleTeacher, CourseRoleOwner)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Invitation is a pending invitation for a user to join a course.
type Invitation struct {
	ID       string     `json:"id" validate:"required"`
	UserID   string     `json:"userId"`
	CourseID string     `json:"courseId"`
	Role     CourseRole `json:"role,omitempty"`
}

// InvitationCreate invites a user to a course.
type InvitationCreate struct {
	UserID   courses.OwnerID `json:"userId" validate:"required"`
	CourseID string          `json:"courseId" validate:"required"`
	Role     CourseRole      `json:"role" validate:"required"`
}

// Check rejects the unspecified role.
func (i InvitationCreate) Check() error {
	if i.Role == CourseRoleUnspecified {
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, "role must be specified"), "role")
	}
	return nil
}
