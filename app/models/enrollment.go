package models

// Enrollment links a student to a course. The (student email, course name)
// pair is the composite identity key.
type Enrollment struct {
	StudentEmail   string `json:"student_email" validate:"required,email"`
	CourseName     string `json:"course_name" validate:"required"`
	EnrollmentDate string `json:"enrollment_date" validate:"required"`
}
