package models

// DriveFileShareMode is the mechanism by which students access a Drive item.
type DriveFileShareMode string

const (
	// ShareModeUnknown should never be returned.
	ShareModeUnknown     DriveFileShareMode = "UNKNOWN_SHARE_MODE"
	ShareModeView        DriveFileShareMode = "VIEW"
	ShareModeEdit        DriveFileShareMode = "EDIT"
	ShareModeStudentCopy DriveFileShareMode = "STUDENT_COPY"
)

// UnmarshalText rejects values outside the documented set.
func (m *DriveFileShareMode) UnmarshalText(text []byte) error {
	v, err := ParseEnum(text, ShareModeUnknown, ShareModeView, ShareModeEdit, ShareModeStudentCopy)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// SharedDriveFile is a Drive file used as material for course work.
type SharedDriveFile struct {
	DriveFile DriveFile          `json:"driveFile"`
	ShareMode DriveFileShareMode `json:"shareMode,omitempty"`
}

// EffectiveShareMode returns the share mode the API applies; VIEW when unset.
func (f SharedDriveFile) EffectiveShareMode() DriveFileShareMode {
	if f.ShareMode == "" {
		return ShareModeView
	}
	return f.ShareMode
}

// AllowedFor reports whether the share mode may be used within course work of
// the given type. EDIT and STUDENT_COPY are only valid for assignments. The
// type does not enforce this itself.
func (f SharedDriveFile) AllowedFor(workType CourseWorkType) bool {
	switch f.EffectiveShareMode() {
	case ShareModeEdit, ShareModeStudentCopy:
		return workType == CourseWorkTypeAssignment
	default:
		return true
	}
}
