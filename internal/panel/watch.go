package panel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

type fileWatch struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func (w *fileWatch) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// WatchFile applies the parameter file now and again every time it is written. The
// directory is watched rather than the file so editors that replace files on save work.
// A missing file is not an error; it is picked up once created.
func (p *Panel) WatchFile(path string) error {
	if p.Disposed() {
		return errors.New("panel disposed")
	}
	path = filepath.Clean(path)

	if err := p.LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.log.Warnf("parameter file %s: %v", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &fileWatch{watcher: watcher, done: make(chan struct{})}
	p.addCloser(w)

	go func() {
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := p.LoadFile(path); err != nil {
					p.log.Warnf("parameter file %s: %v", path, err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warnf("watching %s: %v", path, err)
			}
		}
	}()

	p.log.Infof("watching parameter file %s", path)
	return nil
}

func (p *Panel) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = p.ApplyTOML(data)
	return err
}

// ApplyTOML decodes a parameter document and queues one edit per recognised key.
// Tables are flattened, so both `state1 = 0.5` and `[States] state1 = 0.5` work.
// Unknown keys are reported but do not stop the known ones from applying.
func (p *Panel) ApplyTOML(data []byte) (int, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("invalid parameter file: %w", err)
	}

	values := make(map[string]any)
	flatten(doc, values)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unknown []string
	queued := 0
	for _, k := range keys {
		c, ok := p.Lookup(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		v := values[k]
		p.Enqueue(func() {
			if err := c.Apply(v); err != nil {
				p.log.Warnf("parameter file: %v", err)
			}
		})
		queued++
	}

	if len(unknown) > 0 {
		p.log.Warnf("unrecognised parameter key(s): %s", strings.Join(unknown, ", "))
	}
	return queued, nil
}

func flatten(in map[string]any, out map[string]any) {
	for k, v := range in {
		if table, ok := v.(map[string]any); ok {
			flatten(table, out)
			continue
		}
		out[k] = v
	}
}

// Template renders the current values as a parameter file.
func (p *Panel) Template() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s parameters; edits apply while the view is running.\n", p.Title)
	for _, f := range p.folders {
		fmt.Fprintf(&b, "\n[%s]\n", f.Name)
		for _, c := range p.controls {
			if c.Folder() == f.Name {
				fmt.Fprintf(&b, "%s = %s\n", c.Key(), c.Literal())
			}
		}
	}
	return []byte(b.String())
}
