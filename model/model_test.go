package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryAdd(t *testing.T) {
	var s Summary
	s.Add(Event{Target: "out/a.txt", Action: ActionCopied})
	s.Add(Event{Target: "out/b.txt", Action: ActionModified})
	s.Add(Event{Target: "out/c.txt", Action: ActionDeleted})
	s.Add(Event{Target: "out/d.txt", Action: ActionModified, Warning: "d.txt:4: remove block is never closed"})

	assert.Equal(t, []string{"out/a.txt"}, s.Copied)
	assert.Equal(t, []string{"out/b.txt", "out/d.txt"}, s.Modified)
	assert.Equal(t, []string{"d.txt:4: remove block is never closed"}, s.Warnings)
	assert.Equal(t, []string{"out/c.txt"}, s.Deleted)
}

func TestEventModified(t *testing.T) {
	assert.False(t, Event{Action: ActionCopied}.Modified())
	assert.True(t, Event{Action: ActionModified}.Modified())
	assert.True(t, Event{Action: ActionDeleted}.Modified())
}
