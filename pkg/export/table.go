// Package export renders decoded Classroom resources as tables.
package export

import (
	"github.com/randomairborne/google-classroom/pkg/models"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
)

// Table is a rectangular set of string cells under named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Renderer encodes a Table into a document format.
type Renderer interface {
	Render(Table) ([]byte, error)
	ContentType() string
}

// CourseColumns are the columns produced by CourseTable.
var CourseColumns = []string{"id", "name", "section", "room", "owner", "state", "enrollmentCode"}

// CourseTable flattens courses into one row each, in input order. Absent
// optional fields become empty cells; a missing state shows as PROVISIONED.
func CourseTable(list []courses.Course) Table {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			models.Deref(c.Section),
			models.Deref(c.Room),
			c.OwnerID.String(),
			string(c.State()),
			c.EnrollmentCode,
		})
	}
	return Table{Columns: CourseColumns, Rows: rows}
}
