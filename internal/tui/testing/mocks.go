package testing

import (
	"errors"
)

// ClipboardRecorder captures clipboard writes so tests can assert on them
// without touching the real system clipboard.
type ClipboardRecorder struct {
	Writes []string
	Fail   bool
}

// Write records the text, or fails if the recorder is set to fail
func (c *ClipboardRecorder) Write(text string) error {
	if c.Fail {
		return errors.New("clipboard unavailable")
	}
	c.Writes = append(c.Writes, text)
	return nil
}

// Last returns the most recent write, or "" if there were none
func (c *ClipboardRecorder) Last() string {
	if len(c.Writes) == 0 {
		return ""
	}
	return c.Writes[len(c.Writes)-1]
}
