package schemacheck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/randomairborne/google-classroom/pkg/codec"
	"github.com/randomairborne/google-classroom/pkg/config"
	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/export"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
)

// Render encodes decoded items in format. JSON works for every kind; CSV and
// PDF are only defined for courses.
func Render(c *codec.Codec, format string, kind Kind, items []any, pdfTitle string) ([]byte, error) {
	if err := config.ValidateFormat(format); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedKind.Code, appErrors.ErrUnsupportedKind.Status, "unsupported output format")
	}
	if format == config.FormatJSON {
		compact, err := c.Encode(items)
		if err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, compact, "", "  "); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	}

	if kind.Name != KindCourse {
		msg := fmt.Sprintf("%s export is only available for kind %q, not %q", format, KindCourse, kind.Name)
		return nil, appErrors.Clone(appErrors.ErrUnsupportedKind, msg)
	}
	list := make([]courses.Course, 0, len(items))
	for _, item := range items {
		course, ok := item.(*courses.Course)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("unexpected item type %T", item))
		}
		list = append(list, *course)
	}

	var renderer export.Renderer = export.NewCSVRenderer()
	if format == config.FormatPDF {
		renderer = export.NewPDFRenderer(pdfTitle)
	}
	return renderer.Render(export.CourseTable(list))
}
