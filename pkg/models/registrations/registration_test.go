package registrations

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

const topic = "projects/school-sync/topics/classroom"

func TestRegistrationDecode(t *testing.T) {
	payload := `{
		"registrationId": "reg-1",
		"feed": {"feedType": "COURSE_WORK_CHANGES", "courseWorkChangesInfo": {"courseId": "7"}},
		"cloudPubsubTopic": {"topicName": "projects/school-sync/topics/classroom"},
		"expiryTime": "2024-10-01T00:00:00Z"
	}`
	var r Registration
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	assert.Equal(t, FeedTypeCourseWorkChanges, r.Feed.FeedType)
	require.NotNil(t, r.Feed.CourseWorkChangesInfo)
	assert.Equal(t, "7", r.Feed.CourseWorkChangesInfo.CourseID)
	assert.Nil(t, r.Feed.CourseRosterChangesInfo)

	assert.False(t, r.Expired(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Expired(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFeedTypeRejectsUnknown(t *testing.T) {
	var f Feed
	err := json.Unmarshal([]byte(`{"feedType":"GUARDIAN_CHANGES"}`), &f)
	require.Error(t, err)
	assert.Equal(t, "feedType", models.SchemaError(err).Field)
}

func TestRegistrationCreateCheck(t *testing.T) {
	cases := []struct {
		name  string
		feed  Feed
		field string
	}{
		{"domain roster", Feed{FeedType: FeedTypeDomainRosterChanges}, ""},
		{"course roster", Feed{FeedType: FeedTypeCourseRosterChanges, CourseRosterChangesInfo: &CourseRosterChangesInfo{CourseID: "1"}}, ""},
		{"course work", Feed{FeedType: FeedTypeCourseWorkChanges, CourseWorkChangesInfo: &CourseWorkChangesInfo{CourseID: "1"}}, ""},
		{"roster missing info", Feed{FeedType: FeedTypeCourseRosterChanges}, "feed.courseRosterChangesInfo"},
		{"work with roster info", Feed{
			FeedType:                FeedTypeCourseWorkChanges,
			CourseWorkChangesInfo:   &CourseWorkChangesInfo{CourseID: "1"},
			CourseRosterChangesInfo: &CourseRosterChangesInfo{CourseID: "1"},
		}, "feed.courseRosterChangesInfo"},
		{"domain with info", Feed{FeedType: FeedTypeDomainRosterChanges, CourseWorkChangesInfo: &CourseWorkChangesInfo{CourseID: "1"}}, "feed.courseWorkChangesInfo"},
		{"unspecified", Feed{FeedType: FeedTypeUnspecified}, "feed.feedType"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := RegistrationCreate{Feed: tc.feed, CloudPubsubTopic: CloudPubsubTopic{TopicName: topic}}.Check()
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
			assert.Equal(t, tc.field, appErrors.FromError(err).Field)
		})
	}
}

func TestCloudPubsubTopicCheck(t *testing.T) {
	require.NoError(t, CloudPubsubTopic{TopicName: topic}.Check())

	feed := Feed{FeedType: FeedTypeDomainRosterChanges}
	for _, bad := range []string{"classroom", "projects/x/subscriptions/y", "projects//topics/y", "projects/x/topics/"} {
		err := RegistrationCreate{Feed: feed, CloudPubsubTopic: CloudPubsubTopic{TopicName: bad}}.Check()
		require.Error(t, err, bad)
		assert.Equal(t, "cloudPubsubTopic.topicName", appErrors.FromError(err).Field)
	}
}
