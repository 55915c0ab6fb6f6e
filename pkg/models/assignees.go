package models

import (
	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

// AssigneeMode controls which students can see course work or an announcement.
type AssigneeMode string

const (
	// AssigneeModeUnspecified is never returned.
	AssigneeModeUnspecified AssigneeMode = "ASSIGNEE_MODE_UNSPECIFIED"
	// AssigneeModeAllStudents is the default.
	AssigneeModeAllStudents        AssigneeMode = "ALL_STUDENTS"
	AssigneeModeIndividualStudents AssigneeMode = "INDIVIDUAL_STUDENTS"
)

// UnmarshalText rejects values outside the documented set.
func (m *AssigneeMode) UnmarshalText(text []byte) error {
	v, err := ParseEnum(text, AssigneeModeUnspecified, AssigneeModeAllStudents, AssigneeModeIndividualStudents)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// IndividualStudentsOptions lists the students an item is assigned to. It is
// set if and only if the assignee mode is INDIVIDUAL_STUDENTS.
type IndividualStudentsOptions struct {
	StudentIDs []string `json:"studentIds,omitempty"`
}

// ModifyIndividualStudentsOptions adds or removes students from an item whose
// assignee mode is INDIVIDUAL_STUDENTS.
type ModifyIndividualStudentsOptions struct {
	AddStudentIDs    []string `json:"addStudentIds,omitempty"`
	RemoveStudentIDs []string `json:"removeStudentIds,omitempty"`
}

// CheckAssignees enforces the pairing between an assignee mode and its
// options. The pairing spans two sibling fields, so it is checked at the
// request boundary rather than by the types. optionsField names the options
// field in the error.
func CheckAssignees(mode AssigneeMode, hasOptions bool, optionsField string) error {
	switch {
	case mode == AssigneeModeIndividualStudents && !hasOptions:
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, "required when assigneeMode is INDIVIDUAL_STUDENTS"), optionsField)
	case mode != AssigneeModeIndividualStudents && hasOptions:
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, "only allowed when assigneeMode is INDIVIDUAL_STUDENTS"), optionsField)
	}
	return nil
}

// ModifyAssigneesRequest changes who an announcement or piece of course work is
// assigned to.
type ModifyAssigneesRequest struct {
	AssigneeMode                    AssigneeMode                     `json:"assigneeMode" validate:"required"`
	ModifyIndividualStudentsOptions *ModifyIndividualStudentsOptions `json:"modifyIndividualStudentsOptions,omitempty"`
}

// Check enforces the mode and options pairing.
func (r ModifyAssigneesRequest) Check() error {
	return CheckAssignees(r.AssigneeMode, r.ModifyIndividualStudentsOptions != nil, "modifyIndividualStudentsOptions")
}
