package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncomment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain marker", "//foo();", "foo();"},
		{"one space is dropped", "// foo();", "foo();"},
		{"indentation is kept", "\t\t// foo();", "\t\tfoo();"},
		{"two spaces are kept", "//  foo();", "  foo();"},
		{"marker only", "//", ""},
		{"space at end of string is kept", "// ", " "},
		{"space before terminator is dropped", "// \n", "\n"},
		{"space before CRLF is dropped", "\t// \r\n", "\t\r\n"},
		{"terminator is kept", "// foo();\n", "foo();\n"},
		{"not a comment", "foo(); // trailing", "foo(); // trailing"},
		{"empty line", "", ""},
		{"single slash", "/ foo", "/ foo"},
		{"only first marker is stripped", "// // foo", "// foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Uncomment(tt.line))
		})
	}
}

func TestCommentThenUncommentRoundTrips(t *testing.T) {
	lines := []string{"int x = 0;", "    return x;", "\tfoo(a, b);", ""}
	for _, line := range lines {
		assert.Equal(t, line, Uncomment(Comment(line)), "line %q", line)
	}

	// A separating space only round-trips when the content does not start with a space.
	for _, line := range []string{"int x = 0;", "\tfoo(a, b);", "x\n"} {
		assert.Equal(t, line, Uncomment(Comment(" "+line)), "line %q with separating space", line)
	}
}
