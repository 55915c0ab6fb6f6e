// Package students models course enrollment for students.
package students

import (
	"github.com/randomairborne/google-classroom/pkg/models"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
	"github.com/randomairborne/google-classroom/pkg/models/userprofiles"
)

// Student is a user enrolled in a course as a student.
type Student struct {
	CourseID string                    `json:"courseId"`
	UserID   string                    `json:"userId" validate:"required"`
	Profile  *userprofiles.UserProfile `json:"profile,omitempty"`
	// Only visible to the student and teachers of the course.
	StudentWorkFolder *models.DriveFolder `json:"studentWorkFolder,omitempty"`
}

// StudentCreate enrolls a user. UserID takes the same forms as a course
// owner: a numeric ID, an email address or "me".
type StudentCreate struct {
	UserID courses.OwnerID `json:"userId" validate:"required"`
}
