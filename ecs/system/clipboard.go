package system

import (
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard receives region snippets copied in dev mode.
type Clipboard interface {
	WriteText(text string) error
}

type systemClipboard struct {
	once sync.Once
	err  error
}

// NewSystemClipboard returns the OS clipboard. Initialisation is deferred to
// the first write so headless runs never touch it.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteText(text string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return c.err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
