// Package schemacheck decodes Classroom payload files as a named resource
// kind and reports schema errors. It backs the schemacheck command.
package schemacheck

import (
	"fmt"
	"sort"
	"strings"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
	"github.com/randomairborne/google-classroom/pkg/models/courses/aliases"
	"github.com/randomairborne/google-classroom/pkg/models/courses/announcements"
	"github.com/randomairborne/google-classroom/pkg/models/courses/coursework"
	"github.com/randomairborne/google-classroom/pkg/models/courses/students"
	"github.com/randomairborne/google-classroom/pkg/models/courses/teachers"
	"github.com/randomairborne/google-classroom/pkg/models/courses/topics"
	"github.com/randomairborne/google-classroom/pkg/models/invitations"
	"github.com/randomairborne/google-classroom/pkg/models/registrations"
	"github.com/randomairborne/google-classroom/pkg/models/userprofiles"
)

// KindCourse is the only kind that can be exported as a table.
const KindCourse = "course"

// Kind is a resource shape files can be checked against.
type Kind struct {
	Name string
	// Request kinds are validated as request bodies.
	Request bool
	newFn   func() any
}

// New returns a pointer to a zero value of the kind's type.
func (k Kind) New() any { return k.newFn() }

func readKind[T any](name string) Kind {
	return Kind{Name: name, newFn: func() any { return new(T) }}
}

func requestKind[T any](name string) Kind {
	return Kind{Name: name, Request: true, newFn: func() any { return new(T) }}
}

var registry = map[string]Kind{}

func register(kinds ...Kind) {
	for _, k := range kinds {
		registry[k.Name] = k
	}
}

func init() {
	register(
		readKind[courses.Course](KindCourse),
		requestKind[courses.CourseCreate]("course-create"),
		requestKind[courses.CourseModify]("course-modify"),
		requestKind[aliases.CourseAlias]("alias"),
		readKind[announcements.Announcement]("announcement"),
		requestKind[announcements.AnnouncementCreate]("announcement-create"),
		requestKind[announcements.AnnouncementModify]("announcement-modify"),
		readKind[coursework.CourseWork]("coursework"),
		requestKind[coursework.CourseWorkCreate]("coursework-create"),
		requestKind[coursework.CourseWorkModify]("coursework-modify"),
		readKind[students.Student]("student"),
		requestKind[students.StudentCreate]("student-create"),
		readKind[teachers.Teacher]("teacher"),
		requestKind[teachers.TeacherCreate]("teacher-create"),
		readKind[topics.Topic]("topic"),
		requestKind[topics.TopicCreate]("topic-create"),
		requestKind[topics.TopicModify]("topic-modify"),
		readKind[userprofiles.UserProfile]("user-profile"),
		readKind[invitations.Invitation]("invitation"),
		requestKind[invitations.InvitationCreate]("invitation-create"),
		readKind[registrations.Registration]("registration"),
		requestKind[registrations.RegistrationCreate]("registration-create"),
		readKind[models.Material]("material"),
	)
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := registry[name]
	if !ok {
		msg := fmt.Sprintf("unknown kind %q (known: %s)", name, strings.Join(Names(), ", "))
		return Kind{}, appErrors.Clone(appErrors.ErrUnsupportedKind, msg)
	}
	return k, nil
}

// Names lists the registered kinds in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
