package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

// MaterialKind is the JSON key that discriminates a Material.
type MaterialKind string

const (
	MaterialDriveFile    MaterialKind = "driveFile"
	MaterialYouTubeVideo MaterialKind = "youtubeVideo"
	MaterialLink         MaterialKind = "link"
	MaterialForm         MaterialKind = "form"
)

// Attachment is implemented by every kind of content a Material can hold.
type Attachment interface {
	MaterialKind() MaterialKind
}

func (DriveFile) MaterialKind() MaterialKind    { return MaterialDriveFile }
func (YouTubeVideo) MaterialKind() MaterialKind { return MaterialYouTubeVideo }
func (Link) MaterialKind() MaterialKind         { return MaterialLink }
func (Form) MaterialKind() MaterialKind         { return MaterialForm }

var materialDecoders = map[MaterialKind]func(json.RawMessage) (Attachment, error){
	MaterialDriveFile:    decodeAttachment[DriveFile],
	MaterialYouTubeVideo: decodeAttachment[YouTubeVideo],
	MaterialLink:         decodeAttachment[Link],
	MaterialForm:         decodeAttachment[Form],
}

func decodeAttachment[T Attachment](raw json.RawMessage) (Attachment, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Material is content attached to course work or an announcement: exactly one
// of a Drive file, YouTube video, link or form. Setting a form is not
// supported when creating attachments.
type Material struct {
	attachment Attachment
}

// NewMaterial wraps an attachment.
func NewMaterial(a Attachment) Material {
	return Material{attachment: a}
}

// Attachment returns the wrapped content, nil for an empty Material.
func (m Material) Attachment() Attachment { return m.attachment }

// Kind returns the discriminator of the wrapped content, empty when unset.
func (m Material) Kind() MaterialKind {
	if m.attachment == nil {
		return ""
	}
	return m.attachment.MaterialKind()
}

// DriveFile returns the Drive file if that is the active variant.
func (m Material) DriveFile() (DriveFile, bool) {
	v, ok := m.attachment.(DriveFile)
	return v, ok
}

// YouTubeVideo returns the video if that is the active variant.
func (m Material) YouTubeVideo() (YouTubeVideo, bool) {
	v, ok := m.attachment.(YouTubeVideo)
	return v, ok
}

// Link returns the link if that is the active variant.
func (m Material) Link() (Link, bool) {
	v, ok := m.attachment.(Link)
	return v, ok
}

// Form returns the form if that is the active variant.
func (m Material) Form() (Form, bool) {
	v, ok := m.attachment.(Form)
	return v, ok
}

// MarshalJSON emits the active variant under its discriminator key.
func (m Material) MarshalJSON() ([]byte, error) {
	if m.attachment == nil {
		return nil, appErrors.Clone(appErrors.ErrEmptyMaterial, "")
	}
	body, err := json.Marshal(m.attachment)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[MaterialKind]json.RawMessage{m.attachment.MaterialKind(): body})
}

// UnmarshalJSON selects the single variant named by the payload's only key.
// Errors are *json.UnmarshalTypeError values of type Material whose Field is
// relative to the material: "link.url" for a bad link, the key itself for an
// unknown kind. null is rejected; a list element must hold an attachment.
func (m *Material) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return typeError(jsonKind(data), materialType)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return typeError("object", materialType)
	}
	if len(fields) != 1 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return typeError(fmt.Sprintf("object with keys %q", keys), materialType)
	}

	for key, raw := range fields {
		decode, ok := materialDecoders[MaterialKind(key)]
		if !ok {
			err := typeError(stringValue+strconv.Quote(key), materialType)
			err.Field = key
			return err
		}
		attachment, err := decode(raw)
		if err != nil {
			return variantError(key, err)
		}
		m.attachment = attachment
	}
	return nil
}

// variantError rebases an error from decoding a variant body under its key.
func variantError(key string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		out := typeError("object", materialType)
		out.Field = key
		return out
	}
	out := typeError(typeErr.Value, materialType)
	out.Field = key
	if typeErr.Field != "" {
		out.Field = key + "." + typeErr.Field
	}
	return out
}

// CheckMaterials reports the first empty Material in a write shape. field is
// the JSON name of the list.
func CheckMaterials(materials []Material, field string) error {
	for i, m := range materials {
		if m.attachment == nil {
			return appErrors.WithField(appErrors.ErrEmptyMaterial, fmt.Sprintf("%s[%d]", field, i))
		}
	}
	return nil
}
