package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

func TestMaterialDecodeSelectsVariant(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		kind    MaterialKind
		check   func(t *testing.T, m Material)
	}{
		{
			name:    "drive file",
			payload: `{"driveFile":{"id":"1AbC","title":"Syllabus","alternateLink":"https://drive.google.com/file/d/1AbC","thumbnailUrl":"https://thumb/1AbC"}}`,
			kind:    MaterialDriveFile,
			check: func(t *testing.T, m Material) {
				f, ok := m.DriveFile()
				require.True(t, ok)
				assert.Equal(t, DriveFile{ID: "1AbC", Title: "Syllabus", AlternateLink: "https://drive.google.com/file/d/1AbC", ThumbnailURL: "https://thumb/1AbC"}, f)
			},
		},
		{
			name:    "youtube video",
			payload: `{"youtubeVideo":{"id":"dQw4w9WgXcQ","title":"Lecture 1"}}`,
			kind:    MaterialYouTubeVideo,
			check: func(t *testing.T, m Material) {
				v, ok := m.YouTubeVideo()
				require.True(t, ok)
				assert.Equal(t, "dQw4w9WgXcQ", v.ID)
				assert.Equal(t, "Lecture 1", v.Title)
			},
		},
		{
			name:    "link",
			payload: `{"link":{"url":"https://example.edu/reading","title":"Reading"}}`,
			kind:    MaterialLink,
			check: func(t *testing.T, m Material) {
				l, ok := m.Link()
				require.True(t, ok)
				assert.Equal(t, "https://example.edu/reading", l.URL)
			},
		},
		{
			name:    "form",
			payload: `{"form":{"formUrl":"https://forms.gle/x","responseUrl":"https://docs/y","title":"Quiz"}}`,
			kind:    MaterialForm,
			check: func(t *testing.T, m Material) {
				f, ok := m.Form()
				require.True(t, ok)
				assert.Equal(t, "https://docs/y", f.ResponseURL)
				_, isLink := m.Link()
				assert.False(t, isLink)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m Material
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &m))
			assert.Equal(t, tc.kind, m.Kind())
			tc.check(t, m)
		})
	}
}

func TestMaterialDecodeRejectsUnknownKind(t *testing.T) {
	var m Material
	err := json.Unmarshal([]byte(`{"driveFolder":{"id":"x"}}`), &m)
	require.Error(t, err)
	appErr := SchemaError(err)
	assert.Equal(t, appErrors.ErrUnknownVariant.Code, appErr.Code)
	assert.Equal(t, "driveFolder", appErr.Field)
	assert.Equal(t, `unknown material kind "driveFolder"`, appErr.Message)
}

func TestMaterialDecodeScopesVariantErrors(t *testing.T) {
	var m Material
	err := json.Unmarshal([]byte(`{"link":{"url":42}}`), &m)
	require.Error(t, err)
	appErr := SchemaError(err)
	assert.Equal(t, appErrors.ErrSchemaMismatch.Code, appErr.Code)
	assert.Equal(t, "link.url", appErr.Field)
}

func TestMaterialDecodeRejectsNull(t *testing.T) {
	var list []Material
	err := json.Unmarshal([]byte(`[{"link":{"url":"https://a"}},null]`), &list)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSchemaMismatch.Code, SchemaError(err).Code)

	var m Material
	require.Error(t, json.Unmarshal([]byte(`"link"`), &m))
	assert.Equal(t, appErrors.ErrSchemaMismatch.Code, SchemaError(json.Unmarshal([]byte(`"link"`), &m)).Code)
}

func TestMaterialErrorsCarryEnclosingField(t *testing.T) {
	var holder struct {
		Materials []Material `json:"materials"`
	}
	err := json.Unmarshal([]byte(`{"materials":[{"link":{"url":"https://a"}},{"quiz":{}}]}`), &holder)
	require.Error(t, err)
	appErr := SchemaError(err)
	assert.Equal(t, appErrors.ErrUnknownVariant.Code, appErr.Code)
	assert.Equal(t, "materials", appErr.Field)
}

func TestMaterialDecodeRequiresExactlyOneKind(t *testing.T) {
	for _, payload := range []string{
		`{}`,
		`{"link":{"url":"https://a"},"form":{"formUrl":"https://b"}}`,
	} {
		var m Material
		err := json.Unmarshal([]byte(payload), &m)
		require.Error(t, err, payload)
		assert.Equal(t, appErrors.ErrSchemaMismatch.Code, SchemaError(err).Code)
	}
}

func TestMaterialEncodeEmitsOnlyActiveVariant(t *testing.T) {
	out, err := json.Marshal(NewMaterial(Link{URL: "https://example.edu"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"link":{"url":"https://example.edu"}}`, string(out))

	out, err = json.Marshal([]Material{NewMaterial(DriveFile{ID: "abc"})})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"driveFile":{"id":"abc"}}]`, string(out))
}

func TestMaterialEncodeEmptyFails(t *testing.T) {
	_, err := json.Marshal(Material{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrEmptyMaterial)
}

func TestMaterialRoundTrip(t *testing.T) {
	original := NewMaterial(YouTubeVideo{ID: "vid", Title: "Cells", AlternateLink: "https://youtu.be/vid"})
	out, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Material
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, original, decoded)
}

func TestCheckMaterials(t *testing.T) {
	require.NoError(t, CheckMaterials(nil, "materials"))
	require.NoError(t, CheckMaterials([]Material{NewMaterial(Link{URL: "https://example.com"})}, "materials"))

	err := CheckMaterials([]Material{NewMaterial(Link{URL: "https://example.com"}), {}}, "materials")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrEmptyMaterial.Code, appErr.Code)
	assert.Equal(t, "materials[1]", appErr.Field)
}
