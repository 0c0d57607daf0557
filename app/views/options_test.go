package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-admin/app/models"
)

func TestNewSelectRestoresPriorSelection(t *testing.T) {
	sel := NewSelect("course_name", "Select Course", []string{"Chemistry", "Algebra"}, "Algebra")

	assert.Equal(t, "Select Course", sel.Placeholder)
	assert.Equal(t, "Algebra", sel.Selected)
	require.Len(t, sel.Options, 2)
	assert.Equal(t, "Algebra", sel.Options[0].Value, "options are sorted")
	assert.True(t, sel.Options[0].Selected)
	assert.False(t, sel.Options[1].Selected)
}

func TestNewSelectFallsBackToPlaceholderWhenPriorGone(t *testing.T) {
	sel := NewSelect("course_name", "Select Course", []string{"Chemistry"}, "Algebra")

	assert.Empty(t, sel.Selected, "a vanished prior selection reverts to the placeholder")
	for _, option := range sel.Options {
		assert.False(t, option.Selected)
	}
}

func TestNewSelectEmptyPrior(t *testing.T) {
	sel := NewSelect("student_email", "Select Student", []string{"ada@x.com", "bob@x.com"}, "")

	assert.Empty(t, sel.Selected)
	for _, option := range sel.Options {
		assert.False(t, option.Selected)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys(map[string]int{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestByNameRekeysRenamedCourse(t *testing.T) {
	courses := map[string]models.Course{
		"Algebra":   {Name: "Algebra I", Description: "Math"},
		"Chemistry": {Name: "Chemistry", Description: "Lab"},
	}

	byName := ByName(courses)
	assert.NotContains(t, byName, "Algebra")
	require.Contains(t, byName, "Algebra I")
	assert.Equal(t, "Math", byName["Algebra I"].Description)
	assert.Contains(t, byName, "Chemistry")
}

func TestByEmailRekeysRenamedStudent(t *testing.T) {
	students := map[string]models.Student{
		"ada@x.com": {Name: "Ada", Email: "ada@mergington.edu"},
	}

	byEmail := ByEmail(students)
	assert.NotContains(t, byEmail, "ada@x.com")
	assert.Contains(t, byEmail, "ada@mergington.edu")
}
