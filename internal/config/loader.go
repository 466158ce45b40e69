package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/3michele/hgraph/core"
)

// Loader reads a YAML document, builds its hypergraph and watches the file
// for changes. A reload that fails to parse or build keeps the previous
// hypergraph.
type Loader struct {
	path     string
	hopts    []core.Option
	logger   *zap.Logger
	mu       sync.RWMutex
	doc      *Document
	current  *core.Hypergraph
	onChange []func(*core.Hypergraph)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger for reload diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithGraphOptions passes extra core options to every build.
func WithGraphOptions(opts ...core.Option) LoaderOption {
	return func(ld *Loader) { ld.hopts = append(ld.hopts, opts...) }
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string, opts ...LoaderOption) (*Loader, error) {
	l := &Loader{path: filepath.Clean(path), logger: zap.NewNop()}
	for _, fn := range opts {
		fn(l)
	}
	doc, h, err := l.load()
	if err != nil {
		return nil, err
	}
	l.doc, l.current = doc, h

	return l, nil
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Document returns the latest successfully loaded document.
func (l *Loader) Document() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.doc
}

// Hypergraph returns the latest successfully built hypergraph. Callers must
// not mutate it; Clone it first.
func (l *Loader) Hypergraph() *core.Hypergraph {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked with each newly built hypergraph.
func (l *Loader) OnChange(fn func(*core.Hypergraph)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that reloads the document on file
// changes. The parent directory is watched so editors that replace the file
// are still seen. Call the returned stop function to clean up; it waits for
// the goroutine to exit.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: watcher")
	}
	dir := filepath.Dir(l.path)
	if err = w.Add(dir); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "config: watcher add %s", dir)
	}

	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != l.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.logger.Warn("reload failed, keeping previous hypergraph",
							zap.String("path", l.path), zap.Error(err))
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("watcher error", zap.String("path", l.path), zap.Error(err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}, nil
}

// Reload forces an immediate re-read of the document and notifies callbacks.
func (l *Loader) Reload() (*core.Hypergraph, error) {
	doc, h, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.doc, l.current = doc, h
	callbacks := make([]func(*core.Hypergraph), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	l.logger.Debug("document reloaded", zap.String("path", l.path),
		zap.Int("nodes", h.NumNodes()), zap.Int("edges", h.NumEdges()))
	for _, fn := range callbacks {
		fn(h)
	}

	return h, nil
}

func (l *Loader) load() (*Document, *core.Hypergraph, error) {
	doc, err := Load(l.path)
	if err != nil {
		return nil, nil, err
	}
	h, err := doc.Build(l.hopts...)
	if err != nil {
		return nil, nil, err
	}

	return doc, h, nil
}
