package models

// AccessMode is the kind of operation a user attempts on a note.
type AccessMode int

const (
	// AccessRead covers fetching a single note.
	AccessRead AccessMode = iota
	// AccessWrite covers updating title or content.
	AccessWrite
	// AccessShare covers granting another user visibility.
	AccessShare
	// AccessDelete covers removing the note.
	AccessDelete
)

// String returns the lower-case name of the mode, used in log fields.
func (m AccessMode) String() string {
	switch m {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessShare:
		return "share"
	case AccessDelete:
		return "delete"
	default:
		return "unknown"
	}
}
