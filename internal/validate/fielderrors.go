// Package validate turns raw form input into typed records or field-level
// errors keyed by json field path.
package validate

import (
	"sort"
	"strings"
)

// FieldErrors maps a field path ("email", "billingAddress.line1") to a
// message. It implements error so services can return it through the usual
// (value, error) contract; callers inspect it with AsFieldErrors.
type FieldErrors map[string]string

// Add records a message for a path. The first message per path wins, so
// earlier (more specific) rules are not clobbered by later ones.
func (e FieldErrors) Add(path, message string) {
	if _, ok := e[path]; ok {
		return
	}
	e[path] = message
}

// Merge copies other into e, prefixing each path.
func (e FieldErrors) Merge(prefix string, other FieldErrors) {
	for path, message := range other {
		if prefix != "" {
			path = prefix + "." + path
		}
		e.Add(path, message)
	}
}

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}
	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return "invalid fields: " + strings.Join(paths, ", ")
}

// AsFieldErrors reports whether err is a validation failure and returns the
// per-field messages when it is.
func AsFieldErrors(err error) (FieldErrors, bool) {
	fieldErrs, ok := err.(FieldErrors)
	return fieldErrs, ok
}
