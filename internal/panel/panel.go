// Package panel binds parameter fields to live-editable controls.
//
// Edits from every source (keyboard, watched parameter file, direct calls to Enqueue) are
// queued and applied by Poll on the render thread, so a panel edit lands after the entrance
// timeline has ticked and before the uniforms are copied for the frame.
package panel

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ThatOtherAndrew/Morphfield/internal/logging"
)

// Control is one bound field.
type Control interface {
	Key() string
	Label() string
	Folder() string
	// Literal formats the current value as a TOML literal.
	Literal() string
	Nudge(steps int)
	// Apply sets the value from a decoded parameter-file value.
	Apply(v any) error
}

type Panel struct {
	Title string

	mu       sync.Mutex
	pending  []func()
	disposed bool

	folders  []*Folder
	controls []Control
	selected int
	closers  []io.Closer
	log      logging.Logger
}

type Folder struct {
	Name  string
	panel *Panel
}

func New(title string, log logging.Logger) *Panel {
	return &Panel{Title: title, log: logging.OrNop(log)}
}

func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, panel: p}
	p.folders = append(p.folders, f)
	return f
}

func (p *Panel) Folders() []*Folder {
	return p.folders
}

func (p *Panel) Controls() []Control {
	return p.controls
}

func (p *Panel) add(c Control) {
	p.controls = append(p.controls, c)
}

// Lookup finds a control by key or, case-insensitively, by label.
func (p *Panel) Lookup(name string) (Control, bool) {
	for _, c := range p.controls {
		if c.Key() == name || strings.EqualFold(c.Label(), name) {
			return c, true
		}
	}
	return nil, false
}

// Enqueue schedules an edit for the next Poll. It may be called from any goroutine.
// Edits enqueued after Dispose are dropped.
func (p *Panel) Enqueue(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return
	}
	p.pending = append(p.pending, fn)
}

// Poll applies queued edits in arrival order and returns how many ran.
func (p *Panel) Poll() int {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return 0
	}
	edits := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, fn := range edits {
		fn()
	}
	return len(edits)
}

// Pending reports the number of queued edits.
func (p *Panel) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

func (p *Panel) Selected() Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[p.selected]
}

func (p *Panel) addCloser(c io.Closer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closers = append(p.closers, c)
}

// Dispose stops every edit source and drops queued edits. Later calls do nothing.
func (p *Panel) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	p.pending = nil
	closers := p.closers
	p.closers = nil
	p.mu.Unlock()

	for _, c := range closers {
		if err := c.Close(); err != nil {
			p.log.Warnf("panel %q: closing edit source: %v", p.Title, err)
		}
	}
	p.log.Debugf("panel %q disposed", p.Title)
}

func (p *Panel) Disposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// Describe renders every control grouped by folder, marking the selected one.
func (p *Panel) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Title)
	sel := p.Selected()
	for _, f := range p.folders {
		fmt.Fprintf(&b, "  %s\n", f.Name)
		for _, c := range p.controls {
			if c.Folder() != f.Name {
				continue
			}
			marker := " "
			if c == sel {
				marker = ">"
			}
			fmt.Fprintf(&b, "  %s %-14s %s\n", marker, c.Label(), c.Literal())
		}
	}
	return b.String()
}
