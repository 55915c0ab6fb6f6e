// Package topics models the topics that group course work within a course.
package topics

import (
	"time"

	"github.com/randomairborne/google-classroom/pkg/models"
)

// Topic is a label for grouping course work and materials.
type Topic struct {
	CourseID   string    `json:"courseId"`
	TopicID    string    `json:"topicId" validate:"required"`
	Name       string    `json:"name"`
	UpdateTime time.Time `json:"updateTime"`
}

// TopicCreate is the body of a topic creation request. Names must be unique
// within the course.
type TopicCreate struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// TopicModify renames a topic.
type TopicModify struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

// UpdateMask lists the fields this patch sets.
func (t TopicModify) UpdateMask() []string {
	return models.UpdateMask(t)
}
