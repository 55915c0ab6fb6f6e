package announcements

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

func TestAnnouncementDecode(t *testing.T) {
	payload := `{
		"courseId": "7",
		"id": "a1",
		"text": "Lab goggles tomorrow",
		"materials": [{"link": {"url": "https://example.com/safety", "title": "Safety"}}],
		"state": "PUBLISHED",
		"creationTime": "2024-09-01T12:00:00Z",
		"updateTime": "2024-09-01T12:00:00Z",
		"assigneeMode": "INDIVIDUAL_STUDENTS",
		"individualStudentsOptions": {"studentIds": ["1001", "1002"]},
		"creatorUserId": "42"
	}`
	var a Announcement
	require.NoError(t, json.Unmarshal([]byte(payload), &a))
	require.Len(t, a.Materials, 1)
	link, ok := a.Materials[0].Link()
	require.True(t, ok)
	assert.Equal(t, "Safety", link.Title)
	assert.Equal(t, AnnouncementStatePublished, *a.State)
	assert.Equal(t, models.AssigneeModeIndividualStudents, a.Assignees())
	assert.Equal(t, []string{"1001", "1002"}, a.IndividualStudentsOptions.StudentIDs)
}

func TestAnnouncementDecodeRejectsUnknownState(t *testing.T) {
	var a Announcement
	err := json.Unmarshal([]byte(`{"id":"a1","state":"ARCHIVED"}`), &a)
	require.Error(t, err)
	assert.Equal(t, "state", models.SchemaError(err).Field)
}

func TestAnnouncementCreateCheck(t *testing.T) {
	create := AnnouncementCreate{Text: "hello"}
	require.NoError(t, create.Check())

	out, err := json.Marshal(create)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(out))

	create.IndividualStudentsOptions = &models.IndividualStudentsOptions{StudentIDs: []string{"1"}}
	err = create.Check()
	require.Error(t, err, "options without INDIVIDUAL_STUDENTS")
	assert.Equal(t, "individualStudentsOptions", appErrors.FromError(err).Field)

	create.AssigneeMode = models.Ptr(models.AssigneeModeIndividualStudents)
	require.NoError(t, create.Check())

	create.IndividualStudentsOptions = nil
	require.Error(t, create.Check(), "INDIVIDUAL_STUDENTS without options")

	create = AnnouncementCreate{Text: "hello", Materials: []models.Material{{}}}
	err = create.Check()
	require.Error(t, err)
	assert.Equal(t, "materials[0]", appErrors.FromError(err).Field)
}

func TestAnnouncementModify(t *testing.T) {
	when := time.Date(2024, 9, 10, 8, 0, 0, 0, time.UTC)
	patch := AnnouncementModify{State: models.Ptr(AnnouncementStatePublished), ScheduledTime: &when}
	out, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"PUBLISHED","scheduledTime":"2024-09-10T08:00:00Z"}`, string(out))
	assert.Equal(t, []string{"state", "scheduledTime"}, patch.UpdateMask())
}
