package literal

import "github.com/google/uuid"

// ParseUUID parses a UUID literal's body in canonical textual form.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, &InvalidUUIDError{Text: s, Err: err}
	}
	return id, nil
}
