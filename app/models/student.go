package models

import "fmt"

// Student is an enrolled student. Email is the identity key used for
// updates and deletes.
type Student struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Grade string  `json:"grade" validate:"required"`
	Phone *string `json:"phone"`
}

// GradeLabel renders "9" as "9th Grade" for table display.
func (s Student) GradeLabel() string {
	if s.Grade == "" {
		return ""
	}
	suffix := "th"
	switch s.Grade {
	case "1":
		suffix = "st"
	case "2":
		suffix = "nd"
	case "3":
		suffix = "rd"
	}
	return fmt.Sprintf("%s%s Grade", s.Grade, suffix)
}

func (s Student) PhoneDisplay() string {
	if s.Phone == nil || *s.Phone == "" {
		return "N/A"
	}
	return *s.Phone
}
