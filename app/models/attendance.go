package models

// AttendanceRecord marks a student present or absent in a course on a
// given date.
type AttendanceRecord struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
	CourseName   string `json:"course_name" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Present      bool   `json:"present"`
}

func (a AttendanceRecord) PresentDisplay() string {
	if a.Present {
		return "Present"
	}
	return "Absent"
}
