package edit

import "sync"

// Clipboard is the host's system clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is a process-local Clipboard. The zero value is empty
// and ready to use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// ReadText implements Clipboard.
func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// WriteText implements Clipboard.
func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = s
	return nil
}
