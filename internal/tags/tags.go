package tags

import (
	"fmt"
	"strings"
)

// DefaultPrefix is prepended to every tag name unless configured otherwise.
const DefaultPrefix = "CGRA_"

// Mode is the block the interpreter is currently inside. Blocks are mutually
// exclusive, so a single value is enough to describe the state.
type Mode int

const (
	Idle Mode = iota
	InRemove
	InComment
	InUncomment
)

func (m Mode) String() string {
	switch m {
	case InRemove:
		return "remove"
	case InComment:
		return "comment"
	case InUncomment:
		return "uncomment"
	default:
		return "idle"
	}
}

// Vocabulary holds the literal tag strings recognized in source lines.
type Vocabulary struct {
	DeleteFile     string
	Remove         string
	BeginRemove    string
	EndRemove      string
	BeginComment   string
	EndComment     string
	BeginUncomment string
	EndUncomment   string
}

// NewVocabulary builds the tag set for the given prefix. An empty prefix falls
// back to DefaultPrefix. A prefix is rejected with ErrInvalidPrefix when one
// tag would be found inside a tag checked after it (e.g. "_REMOVE" inside
// "_BEGIN_REMOVE"), since the later tag could then never be recognized.
func NewVocabulary(prefix string) (Vocabulary, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	v := Vocabulary{
		DeleteFile:     prefix + "DELETE_FILE",
		Remove:         prefix + "REMOVE",
		BeginRemove:    prefix + "BEGIN_REMOVE",
		EndRemove:      prefix + "END_REMOVE",
		BeginComment:   prefix + "BEGIN_COMMENT",
		EndComment:     prefix + "END_COMMENT",
		BeginUncomment: prefix + "BEGIN_UNCOMMENT",
		EndUncomment:   prefix + "END_UNCOMMENT",
	}

	ordered := v.ordered()
	for i, earlier := range ordered {
		for _, later := range ordered[i+1:] {
			if contains(later, earlier) {
				return Vocabulary{}, fmt.Errorf("%w %q: %s would also match %s", ErrInvalidPrefix, prefix, earlier, later)
			}
		}
	}
	return v, nil
}

// ordered returns the tags in the priority order used by classify.
func (v Vocabulary) ordered() []string {
	return []string{
		v.DeleteFile,
		v.Remove,
		v.BeginRemove,
		v.EndRemove,
		v.BeginComment,
		v.EndComment,
		v.BeginUncomment,
		v.EndUncomment,
	}
}

// begin returns the opening tag for a block mode.
func (v Vocabulary) begin(m Mode) string {
	switch m {
	case InRemove:
		return v.BeginRemove
	case InComment:
		return v.BeginComment
	case InUncomment:
		return v.BeginUncomment
	}
	return ""
}

// end returns the closing tag for a block mode.
func (v Vocabulary) end(m Mode) string {
	switch m {
	case InRemove:
		return v.EndRemove
	case InComment:
		return v.EndComment
	case InUncomment:
		return v.EndUncomment
	}
	return ""
}

// control is a recognized tag on a line.
type control int

const (
	noTag control = iota
	deleteFile
	removeLine
	beginBlock
	endBlock
)

// classify returns the single tag recognized on line, checked in priority
// order. For block tags the affected mode is returned as well.
func (v Vocabulary) classify(line string) (control, Mode) {
	switch {
	case contains(line, v.DeleteFile):
		return deleteFile, Idle
	case contains(line, v.Remove):
		return removeLine, Idle
	case contains(line, v.BeginRemove):
		return beginBlock, InRemove
	case contains(line, v.EndRemove):
		return endBlock, InRemove
	case contains(line, v.BeginComment):
		return beginBlock, InComment
	case contains(line, v.EndComment):
		return endBlock, InComment
	case contains(line, v.BeginUncomment):
		return beginBlock, InUncomment
	case contains(line, v.EndUncomment):
		return endBlock, InUncomment
	}
	return noTag, Idle
}

func contains(line, tag string) bool {
	return strings.Contains(line, tag)
}
