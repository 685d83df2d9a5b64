// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is installed
// (xclip, xsel, wl-copy, pbcopy or clip.exe).
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer accepts text for the clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last copied text. Used where no OS clipboard exists.
type Memory struct {
	Text   string
	Writes int
}

func (m *Memory) WriteAll(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
