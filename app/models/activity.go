package models

// Activity is an extracurricular activity with its signed-up participants.
// Activities are read-only from the admin side except for participant
// signup and unregistration.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
