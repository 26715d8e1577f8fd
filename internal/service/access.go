package service

import "github.com/MKhiriev/go-note-keeper/models"

// CheckAccess allows every mode to the note owner only. shared_with is not
// consulted.
func CheckAccess(user models.User, note models.Note, mode models.AccessMode) error {
	if user.Username != "" && user.Username == note.Owner {
		return nil
	}

	return &AccessError{Mode: mode, Username: user.Username, NoteID: note.ID}
}
