package models

// Course is a course offering. Name is the identity key used for updates
// and deletes.
type Course struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Schedule        string  `json:"schedule" validate:"required"`
	MaxParticipants int     `json:"max_participants" validate:"required,gt=0"`
	Instructor      *string `json:"instructor"`
}

func (c Course) InstructorDisplay() string {
	if c.Instructor == nil || *c.Instructor == "" {
		return "N/A"
	}
	return *c.Instructor
}
