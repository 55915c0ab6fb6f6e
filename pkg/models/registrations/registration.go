// Package registrations models push-notification registrations. Only the
// resource shapes are provided; receiving notifications is out of scope.
package registrations

import (
	"fmt"
	"strings"
	"time"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

// FeedType selects which changes a registration reports.
type FeedType string

const (
	FeedTypeUnspecified         FeedType = "FEED_TYPE_UNSPECIFIED"
	FeedTypeDomainRosterChanges FeedType = "DOMAIN_ROSTER_CHANGES"
	FeedTypeCourseRosterChanges FeedType = "COURSE_ROSTER_CHANGES"
	FeedTypeCourseWorkChanges   FeedType = "COURSE_WORK_CHANGES"
)

// UnmarshalText rejects values outside the documented set.
func (f *FeedType) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		FeedTypeUnspecified,
		FeedTypeDomainRosterChanges,
		FeedTypeCourseRosterChanges,
		FeedTypeCourseWorkChanges,
	)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

type CourseRosterChangesInfo struct {
	CourseID string `json:"courseId" validate:"required"`
}

type CourseWorkChangesInfo struct {
	CourseID string `json:"courseId" validate:"required"`
}

// Feed names the stream of changes. The info block matching FeedType must be
// set and the other left empty; domain roster feeds carry neither.
type Feed struct {
	FeedType                FeedType                 `json:"feedType,omitempty" validate:"required"`
	CourseRosterChangesInfo *CourseRosterChangesInfo `json:"courseRosterChangesInfo,omitempty"`
	CourseWorkChangesInfo   *CourseWorkChangesInfo   `json:"courseWorkChangesInfo,omitempty"`
}

// Check enforces the pairing between the feed type and its info block.
func (f Feed) Check() error {
	roster := f.CourseRosterChangesInfo != nil
	work := f.CourseWorkChangesInfo != nil

	switch f.FeedType {
	case FeedTypeDomainRosterChanges:
		if roster {
			return feedError("courseRosterChangesInfo", "not allowed for DOMAIN_ROSTER_CHANGES")
		}
		if work {
			return feedError("courseWorkChangesInfo", "not allowed for DOMAIN_ROSTER_CHANGES")
		}
	case FeedTypeCourseRosterChanges:
		if !roster {
			return feedError("courseRosterChangesInfo", "required for COURSE_ROSTER_CHANGES")
		}
		if work {
			return feedError("courseWorkChangesInfo", "not allowed for COURSE_ROSTER_CHANGES")
		}
	case FeedTypeCourseWorkChanges:
		if !work {
			return feedError("courseWorkChangesInfo", "required for COURSE_WORK_CHANGES")
		}
		if roster {
			return feedError("courseRosterChangesInfo", "not allowed for COURSE_WORK_CHANGES")
		}
	default:
		return feedError("feedType", fmt.Sprintf("feed type %q cannot be registered", f.FeedType))
	}
	return nil
}

func feedError(field, message string) error {
	return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, message), field)
}

// CloudPubsubTopic is the Pub/Sub topic notifications are published to, in
// the form "projects/{project}/topics/{topic}".
type CloudPubsubTopic struct {
	TopicName string `json:"topicName" validate:"required"`
}

// Check validates the topic name layout.
func (c CloudPubsubTopic) Check() error {
	parts := strings.Split(c.TopicName, "/")
	if len(parts) != 4 || parts[0] != "projects" || parts[2] != "topics" || parts[1] == "" || parts[3] == "" {
		return feedError("topicName", fmt.Sprintf("%q is not of the form projects/{project}/topics/{topic}", c.TopicName))
	}
	return nil
}

// Registration is an active notification registration.
type Registration struct {
	RegistrationID   string           `json:"registrationId" validate:"required"`
	Feed             Feed             `json:"feed"`
	CloudPubsubTopic CloudPubsubTopic `json:"cloudPubsubTopic"`
	// Renew before this time to keep receiving notifications.
	ExpiryTime time.Time `json:"expiryTime"`
}

// Expired reports whether the registration lapsed at or before now.
func (r Registration) Expired(now time.Time) bool {
	return !r.ExpiryTime.After(now)
}

// RegistrationCreate registers for notifications.
type RegistrationCreate struct {
	Feed             Feed             `json:"feed"`
	CloudPubsubTopic CloudPubsubTopic `json:"cloudPubsubTopic"`
}

// Check validates the feed and topic.
func (r RegistrationCreate) Check() error {
	if err := r.Feed.Check(); err != nil {
		return appErrors.Prefix(appErrors.FromError(err), "feed")
	}
	if err := r.CloudPubsubTopic.Check(); err != nil {
		return appErrors.Prefix(appErrors.FromError(err), "cloudPubsubTopic")
	}
	return nil
}
