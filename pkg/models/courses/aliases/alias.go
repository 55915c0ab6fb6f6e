// Package aliases models alternative identifiers for courses.
package aliases

import (
	"fmt"
	"strings"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

// Scope is the namespace an alias lives in.
type Scope string

const (
	ScopeUnknown Scope = ""
	// ScopeDomain aliases are visible to every project in the domain.
	ScopeDomain Scope = "d"
	// ScopeProject aliases are visible only to the requesting developer
	// project.
	ScopeProject Scope = "p"
)

// CourseAlias is an alternative identifier for a course, written
// "d:<name>" or "p:<name>". It can be used in place of the course ID in any
// request that takes one.
type CourseAlias struct {
	Alias string `json:"alias" validate:"required"`
}

// DomainAlias builds a domain-scoped alias.
func DomainAlias(name string) CourseAlias {
	return CourseAlias{Alias: string(ScopeDomain) + ":" + name}
}

// ProjectAlias builds a project-scoped alias.
func ProjectAlias(name string) CourseAlias {
	return CourseAlias{Alias: string(ScopeProject) + ":" + name}
}

func (a CourseAlias) split() (Scope, string) {
	prefix, name, ok := strings.Cut(a.Alias, ":")
	if !ok {
		return ScopeUnknown, a.Alias
	}
	switch Scope(prefix) {
	case ScopeDomain, ScopeProject:
		return Scope(prefix), name
	}
	return ScopeUnknown, a.Alias
}

// Scope returns the alias namespace, ScopeUnknown without a recognised
// prefix.
func (a CourseAlias) Scope() Scope {
	scope, _ := a.split()
	return scope
}

// Name returns the alias without its scope prefix.
func (a CourseAlias) Name() string {
	_, name := a.split()
	return name
}

// Check rejects aliases without a known scope or name.
func (a CourseAlias) Check() error {
	scope, name := a.split()
	if scope == ScopeUnknown {
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("alias %q needs a d: or p: scope", a.Alias)), "alias")
	}
	if name == "" {
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, "alias name is empty"), "alias")
	}
	return nil
}
