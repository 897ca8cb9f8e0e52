package hardware

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleDisplay keeps the last message shown and echoes each one to w.
type ConsoleDisplay struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

// NewConsoleDisplay returns a display echoing to w; w may be nil.
func NewConsoleDisplay(w io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{w: w}
}

func (d *ConsoleDisplay) Show(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = message
	if d.w != nil {
		fmt.Fprintf(d.w, "[display] %s\n", message)
	}
}

func (d *ConsoleDisplay) LastMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
