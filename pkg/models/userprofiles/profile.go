// Package userprofiles models the public profile of a Classroom user.
package userprofiles

import (
	"github.com/randomairborne/google-classroom/pkg/models"
)

// Name is a user's name as split by the directory.
type Name struct {
	GivenName  string `json:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	FullName   string `json:"fullName,omitempty"`
}

// Permission is a global permission a user may hold.
type Permission string

const (
	PermissionUnspecified  Permission = "PERMISSION_UNSPECIFIED"
	PermissionCreateCourse Permission = "CREATE_COURSE"
)

// UnmarshalText rejects values outside the documented set.
func (p *Permission) UnmarshalText(text []byte) error {
	v, err := models.ParseEnum(text, PermissionUnspecified, PermissionCreateCourse)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// GlobalPermission grants a permission across the domain.
type GlobalPermission struct {
	Permission Permission `json:"permission,omitempty"`
}

// UserProfile is a user's profile. Fields other than ID are only filled in
// when the caller is allowed to see them.
type UserProfile struct {
	ID           string             `json:"id" validate:"required"`
	Name         *Name              `json:"name,omitempty"`
	EmailAddress string             `json:"emailAddress,omitempty"`
	PhotoURL     string             `json:"photoUrl,omitempty"`
	Permissions  []GlobalPermission `json:"permissions,omitempty"`
	// Unset when verification status is unknown or the caller cannot see it.
	VerifiedTeacher *bool `json:"verifiedTeacher,omitempty"`
}

// CanCreateCourse reports whether the profile holds CREATE_COURSE.
func (u UserProfile) CanCreateCourse() bool {
	for _, p := range u.Permissions {
		if p.Permission == PermissionCreateCourse {
			return true
		}
	}
	return false
}

// DisplayName returns the full name, falling back to the email address.
func (u UserProfile) DisplayName() string {
	if u.Name != nil && u.Name.FullName != "" {
		return u.Name.FullName
	}
	return u.EmailAddress
}
