package coursework

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

const courseWorkPayload = `{
  "courseId": "7",
  "id": "cw1",
  "title": "Cell diagram",
  "materials": [
    {"driveFile": {"id": "0B-diagram", "title": "diagram.png"}},
    {"youtubeVideo": {"id": "dQw4w9WgXcQ", "title": "Mitosis"}}
  ],
  "state": "PUBLISHED",
  "creationTime": "2024-09-01T12:00:00Z",
  "updateTime": "2024-09-02T12:00:00Z",
  "dueDate": {"year": 2024, "month": 9, "day": 15},
  "dueTime": {"hours": 23, "minutes": 59},
  "maxPoints": 100,
  "workType": "ASSIGNMENT",
  "submissionModificationMode": "MODIFIABLE_UNTIL_TURNED_IN",
  "topicId": "77",
  "gradeCategory": {"id": "1", "name": "Labs", "weight": 600000, "defaultGradeDenominator": "100"},
  "assignment": {"studentWorkFolder": {"id": "0B-folder"}}
}`

func TestCourseWorkDecode(t *testing.T) {
	var w CourseWork
	require.NoError(t, json.Unmarshal([]byte(courseWorkPayload), &w))

	assert.Equal(t, models.CourseWorkTypeAssignment, w.WorkType)
	require.Len(t, w.Materials, 2)
	assert.Equal(t, models.MaterialDriveFile, w.Materials[0].Kind())
	assert.Equal(t, models.MaterialYouTubeVideo, w.Materials[1].Kind())

	due, ok := w.Due()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 9, 15, 23, 59, 0, 0, time.UTC), due)
	assert.False(t, w.Ungraded())

	require.NotNil(t, w.GradeCategory)
	assert.Equal(t, 60.0, w.GradeCategory.Weight.Percent())
	assert.Equal(t, models.Denominator(100), w.GradeCategory.DefaultGradeDenominator)
	require.NotNil(t, w.Assignment)
	assert.Equal(t, "0B-folder", w.Assignment.StudentWorkFolder.ID)
	assert.Equal(t, SubmissionModificationModeUntilTurnedIn, *w.SubmissionModificationMode)
}

func TestCourseWorkDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"state":                      `{"id":"1","state":"ARCHIVED"}`,
		"workType":                   `{"id":"1","workType":"ESSAY"}`,
		"submissionModificationMode": `{"id":"1","submissionModificationMode":"NEVER"}`,
		"assigneeMode":               `{"id":"1","assigneeMode":"SOME_STUDENTS"}`,
		"materials":                  `{"id":"1","materials":[{"quiz":{}}]}`,
	}
	for field, payload := range cases {
		t.Run(field, func(t *testing.T) {
			var w CourseWork
			err := json.Unmarshal([]byte(payload), &w)
			require.Error(t, err)
			assert.Equal(t, field, models.SchemaError(err).Field)
		})
	}
}

func TestCourseWorkWithoutDueDate(t *testing.T) {
	var w CourseWork
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","workType":"SHORT_ANSWER_QUESTION"}`), &w))
	_, ok := w.Due()
	assert.False(t, ok)
	assert.True(t, w.Ungraded())
}

func validCreate() CourseWorkCreate {
	return CourseWorkCreate{Title: "Essay", WorkType: models.CourseWorkTypeAssignment}
}

func TestCourseWorkCreateCheck(t *testing.T) {
	require.NoError(t, validCreate().Check())

	cases := []struct {
		name   string
		mutate func(*CourseWorkCreate)
		field  string
	}{
		{"unspecified type", func(w *CourseWorkCreate) { w.WorkType = models.CourseWorkTypeUnspecified }, "workType"},
		{"due time without date", func(w *CourseWorkCreate) { w.DueTime = &TimeOfDay{Hours: 9} }, "dueTime"},
		{"choices on assignment", func(w *CourseWorkCreate) {
			w.MultipleChoiceQuestion = &MultipleChoiceQuestion{Choices: []string{"a"}}
		}, "multipleChoiceQuestion"},
		{"multiple choice without choices", func(w *CourseWorkCreate) {
			w.WorkType = models.CourseWorkTypeMultipleChoiceQuestion
		}, "multipleChoiceQuestion"},
		{"individual students without options", func(w *CourseWorkCreate) {
			w.AssigneeMode = models.Ptr(models.AssigneeModeIndividualStudents)
		}, "individualStudentsOptions"},
		{"empty material", func(w *CourseWorkCreate) { w.Materials = []models.Material{{}} }, "materials[0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := validCreate()
			tc.mutate(&w)
			err := w.Check()
			require.Error(t, err)
			assert.Equal(t, tc.field, appErrors.FromError(err).Field)
		})
	}

	mc := CourseWorkCreate{
		Title:                  "Which organelle?",
		WorkType:               models.CourseWorkTypeMultipleChoiceQuestion,
		MultipleChoiceQuestion: &MultipleChoiceQuestion{Choices: []string{"Nucleus", "Ribosome"}},
		DueDate:                &Date{Year: 2024, Month: 9, Day: 20},
		DueTime:                &TimeOfDay{Hours: 12},
	}
	require.NoError(t, mc.Check())
}

func TestCourseWorkCreateEncode(t *testing.T) {
	out, err := json.Marshal(validCreate())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Essay","workType":"ASSIGNMENT"}`, string(out))
}

func TestCourseWorkModify(t *testing.T) {
	patch := CourseWorkModify{
		DueDate:   &Date{Year: 2024, Month: 10, Day: 1},
		MaxPoints: models.Ptr(50.0),
	}
	out, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dueDate":{"year":2024,"month":10,"day":1},"maxPoints":50}`, string(out))
	assert.Equal(t, []string{"dueDate", "maxPoints"}, patch.UpdateMask())
}

func TestDateHelpers(t *testing.T) {
	instant := time.Date(2024, 3, 9, 17, 30, 5, 0, time.FixedZone("EST", -5*3600))
	d := DateOf(instant)
	tod := TimeOfDayOf(instant)
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 9}, d)
	assert.Equal(t, TimeOfDay{Hours: 22, Minutes: 30, Seconds: 5}, tod)
	assert.True(t, instant.Equal(d.At(&tod)))
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), d.At(nil))
	assert.True(t, Date{}.IsZero())
}
