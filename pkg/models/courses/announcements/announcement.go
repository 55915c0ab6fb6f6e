// Package announcements models the announcements posted to a course stream.
package announcements

import (
	"time"

	"github.com/randomairborne/google-classroom/pkg/models"
)

// AnnouncementState is the publication state of an announcement.
type AnnouncementState string

const (
	AnnouncementStateUnspecified AnnouncementState = "ANNOUNCEMENT_STATE_UNSPECIFIED"
	AnnouncementStatePublished   AnnouncementState = "PUBLISHED"
	AnnouncementStateDraft       AnnouncementState = "DRAFT"
	AnnouncementStateDeleted     AnnouncementState = "DELETED"
)

// UnmarshalText rejects values outside the documented set.
func (s *AnnouncementState) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text,
		AnnouncementStateUnspecified,
		AnnouncementStatePublished,
		AnnouncementStateDraft,
		AnnouncementStateDeleted,
	)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Announcement is a post in a course stream.
type Announcement struct {
	CourseID                  string                            `json:"courseId"`
	ID                        string                            `json:"id" validate:"required"`
	Text                      string                            `json:"text"`
	Materials                 []models.Material                 `json:"materials,omitempty"`
	State                     *AnnouncementState                `json:"state,omitempty"`
	AlternateLink             string                            `json:"alternateLink,omitempty"`
	CreationTime              time.Time                         `json:"creationTime"`
	UpdateTime                time.Time                         `json:"updateTime"`
	ScheduledTime             *time.Time                        `json:"scheduledTime,omitempty"`
	AssigneeMode              *models.AssigneeMode              `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions *models.IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
	CreatorUserID             string                            `json:"creatorUserId,omitempty"`
}

// Assignees returns the assignee mode, ALL_STUDENTS when unset.
func (a Announcement) Assignees() models.AssigneeMode {
	if a.AssigneeMode == nil {
		return models.AssigneeModeAllStudents
	}
	return *a.AssigneeMode
}

// AnnouncementCreate is the body of an announcement creation request.
type AnnouncementCreate struct {
	Text                      string                            `json:"text" validate:"required"`
	Materials                 []models.Material                 `json:"materials,omitempty"`
	State                     *AnnouncementState                `json:"state,omitempty"`
	ScheduledTime             *time.Time                        `json:"scheduledTime,omitempty"`
	AssigneeMode              *models.AssigneeMode              `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions *models.IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
}

// Check enforces the assignee pairing and rejects empty materials.
func (a AnnouncementCreate) Check() error {
	mode := models.AssigneeModeAllStudents
	if a.AssigneeMode != nil {
		mode = *a.AssigneeMode
	}
	if err := models.CheckAssignees(mode, a.IndividualStudentsOptions != nil, "individualStudentsOptions"); err != nil {
		return err
	}
	return models.CheckMaterials(a.Materials, "materials")
}

// AnnouncementModify is a partial update of an announcement. Only drafts may
// change state, and only to PUBLISHED.
type AnnouncementModify struct {
	Text          *string            `json:"text,omitempty" validate:"omitempty,min=1"`
	State         *AnnouncementState `json:"state,omitempty"`
	ScheduledTime *time.Time         `json:"scheduledTime,omitempty"`
}

// UpdateMask lists the fields this patch sets.
func (a AnnouncementModify) UpdateMask() []string {
	return models.UpdateMask(a)
}

// ModifyAnnouncementAssigneesRequest changes who can see an announcement.
type ModifyAnnouncementAssigneesRequest = models.ModifyAssigneesRequest
