package students

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomairborne/google-classroom/pkg/models/courses"
)

func TestStudentDecode(t *testing.T) {
	payload := `{
		"courseId": "612345678901",
		"userId": "1001",
		"profile": {"id": "1001", "name": {"fullName": "Grace Hopper"}},
		"studentWorkFolder": {"id": "0B-work", "title": "Biology - Grace"}
	}`
	var s Student
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	assert.Equal(t, "1001", s.UserID)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "Grace Hopper", s.Profile.DisplayName())
	require.NotNil(t, s.StudentWorkFolder)
	assert.Equal(t, "0B-work", s.StudentWorkFolder.ID)
}

func TestStudentCreateUserForms(t *testing.T) {
	for text, want := range map[string]courses.OwnerID{
		"me":               courses.Me,
		"1001":             courses.ID("1001"),
		"pupil@school.edu": courses.Email("pupil@school.edu"),
	} {
		var create StudentCreate
		require.NoError(t, json.Unmarshal([]byte(`{"userId":"`+text+`"}`), &create))
		assert.Equal(t, want, create.UserID)

		out, err := json.Marshal(create)
		require.NoError(t, err)
		assert.JSONEq(t, `{"userId":"`+text+`"}`, string(out))
	}
}
