package tags

import (
	"strings"
	"unicode"
)

// CommentMarker is prepended to lines inside a comment block and stripped from
// lines inside an uncomment block.
const CommentMarker = "//"

// Uncomment strips a leading "//" from line, keeping any indentation in front
// of it. A single space after the marker is dropped as well when another
// character follows it that is not a space; a line terminator counts as such
// a character, the end of the string does not. Lines that do not start with
// the marker are returned unchanged.
//
// Only this one comment style is understood; this is not a comment parser.
func Uncomment(line string) string {
	body := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(body, CommentMarker) {
		return line
	}
	indent := line[:len(line)-len(body)]
	rest := body[len(CommentMarker):]
	if len(rest) > 1 && rest[0] == ' ' && rest[1] != ' ' {
		rest = rest[1:]
	}
	return indent + rest
}

// Comment prepends the comment marker to line without touching anything else.
func Comment(line string) string {
	return CommentMarker + line
}
