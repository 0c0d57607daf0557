package models

// Optional maps an empty form value to an explicitly absent field.
func Optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
