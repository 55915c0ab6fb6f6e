// Package teachers models the teachers of a course.
package teachers

import (
	"github.com/randomairborne/google-classroom/pkg/models/courses"
	"github.com/randomairborne/google-classroom/pkg/models/userprofiles"
)

// Teacher is a user teaching a course.
type Teacher struct {
	CourseID string                    `json:"courseId"`
	UserID   string                    `json:"userId" validate:"required"`
	Profile  *userprofiles.UserProfile `json:"profile,omitempty"`
}

// TeacherCreate adds a teacher to a course.
type TeacherCreate struct {
	UserID courses.OwnerID `json:"userId" validate:"required"`
}
