package model

// Action describes what happened to a single mirrored file.
type Action string

const (
	// ActionCopied means the file had no tags and was copied verbatim.
	ActionCopied Action = "copy"
	// ActionModified means the file was rewritten.
	ActionModified Action = "modify"
	// ActionDeleted means the file was dropped from the output tree.
	ActionDeleted Action = "delete"
)

// Event is reported once per visited file.
type Event struct {
	Source  string // Input file path
	Target  string // Mirrored output path
	Action  Action
	Warning string // Non-fatal problem found while handling the file
}

// Modified reports whether a tag was found in the file.
func (e Event) Modified() bool {
	return e.Action == ActionModified || e.Action == ActionDeleted
}

// Tally holds the counts for one directory input.
type Tally struct {
	Input    string
	Target   string
	Files    int
	Modified int
}

// Summary holds the results of an operation for display.
type Summary struct {
	Copied   []string
	Modified []string
	Deleted  []string
	Tallies  []Tally
	Warnings []string
	Message  string
}

// Add records an event in the summary.
func (s *Summary) Add(e Event) {
	switch e.Action {
	case ActionModified:
		s.Modified = append(s.Modified, e.Target)
	case ActionDeleted:
		s.Deleted = append(s.Deleted, e.Target)
	default:
		s.Copied = append(s.Copied, e.Target)
	}
	if e.Warning != "" {
		s.Warnings = append(s.Warnings, e.Warning)
	}
}
