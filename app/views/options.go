// Package views holds helpers shared by the section templates.
package views

import (
	"sort"

	"mergington-admin/app/models"
)

// Option is a single dropdown choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Select is a dropdown rebuilt from a fresh collection snapshot. The
// placeholder is always the first option; the prior selection is restored
// only when it still exists in the new snapshot.
type Select struct {
	Name        string
	Placeholder string
	Options     []Option
	Selected    string
}

// NewSelect builds a dropdown from the given values, sorted, restoring
// prior as the selection if still present.
func NewSelect(name, placeholder string, values []string, prior string) Select {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	sel := Select{Name: name, Placeholder: placeholder}
	for _, value := range sorted {
		option := Option{Value: value, Label: value}
		if value == prior {
			option.Selected = true
			sel.Selected = prior
		}
		sel.Options = append(sel.Options, option)
	}
	return sel
}

// Keys returns the sorted keys of a string-keyed map, the render order for
// map-backed tables and dropdowns.
func Keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// The backend keys student and course records by their identity at
// creation time and does not rekey on rename. Rekeying by the current
// field value makes renames surface immediately in tables and dropdowns.

func ByEmail(students map[string]models.Student) map[string]models.Student {
	byEmail := make(map[string]models.Student, len(students))
	for _, student := range students {
		byEmail[student.Email] = student
	}
	return byEmail
}

func ByName(courses map[string]models.Course) map[string]models.Course {
	byName := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byName[course.Name] = course
	}
	return byName
}
