// Package editor runs an editing session over a document.
//
// A [Session] owns its [document.Document] and is its only writer. One loop
// serializes commands, file loads and autosave ticks, so a command never
// observes a half-applied load and autosave never races an edit:
//
//	s := editor.NewSession(doc, editor.Options{AutosavePath: "autosave.aitp"})
//	go s.Run(ctx)
//	err := s.Do(ctx, func(d *document.Document) error {
//	    _, err := d.NewObject(pool.TypeButton, "OK")
//	    d.Commit()
//	    return err
//	})
package editor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// DefaultAutosaveInterval is used when Options.AutosaveInterval is zero.
const DefaultAutosaveInterval = 30 * time.Second

// Command is a unit of work run on the session loop with exclusive access
// to the document.
type Command func(d *document.Document) error

// Options configures a Session.
type Options struct {
	// Path is the file the document was opened from. Save writes here.
	Path string

	// AutosavePath receives a project file of the committed pool on every
	// tick where it changed. Empty disables autosave.
	AutosavePath string

	// AutosaveInterval defaults to DefaultAutosaveInterval.
	AutosaveInterval time.Duration

	// Logger defaults to log.Default().
	Logger *log.Logger
}

type request struct {
	fn   Command
	done chan error
}

type loaded struct {
	doc  *document.Document
	path string
	err  error
	done chan error
}

// Session serializes all access to one document.
type Session struct {
	doc    *document.Document
	opts   Options
	logger *log.Logger

	requests chan request
	loads    chan loaded
	stopped  chan struct{}

	saved *pool.Pool // committed pool at the last autosave
}

// NewSession returns a session editing doc. A nil doc starts from an
// empty pool.
func NewSession(doc *document.Document, opts Options) *Session {
	if doc == nil {
		doc = document.New(nil)
	}
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = DefaultAutosaveInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		doc:      doc,
		opts:     opts,
		logger:   logger,
		requests: make(chan request),
		loads:    make(chan loaded),
		stopped:  make(chan struct{}),
		saved:    doc.Pool(),
	}
}

// Run processes commands, loads and autosave ticks until ctx is done. A
// final autosave is attempted on the way out. Run must be called once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.stopped)

	var tick <-chan time.Time
	if s.opts.AutosavePath != "" {
		t := time.NewTicker(s.opts.AutosaveInterval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			s.autosave()
			return ctx.Err()
		case req := <-s.requests:
			req.done <- s.apply(req.fn)
		case l := <-s.loads:
			l.done <- s.install(l)
		case <-tick:
			s.autosave()
		}
	}
}

// Do runs fn on the session loop and returns its error. It fails with
// ctx's error if ctx ends before the loop accepts the command.
func (s *Session) Do(ctx context.Context, fn Command) error {
	req := request{fn: fn, done: make(chan error, 1)}
	select {
	case s.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return errors.New(errors.ErrCodeInternal, "session is closed")
	}
	return <-req.done
}

// View runs fn with read access to the document on the session loop.
func (s *Session) View(ctx context.Context, fn func(d *document.Document)) error {
	return s.Do(ctx, func(d *document.Document) error {
		fn(d)
		return nil
	})
}

// Open reads path in the background and replaces the document once it is
// parsed. The returned channel yields the outcome. A failed load leaves
// the current document untouched.
func (s *Session) Open(ctx context.Context, path string) <-chan error {
	result := make(chan error, 1)
	go func() {
		doc, err := ReadFile(path)
		l := loaded{doc: doc, path: path, err: err, done: make(chan error, 1)}
		select {
		case s.loads <- l:
			result <- <-l.done
		case <-ctx.Done():
			result <- ctx.Err()
		case <-s.stopped:
			result <- errors.New(errors.ErrCodeInternal, "session is closed")
		}
	}()
	return result
}

// Save writes the committed document to Options.Path.
func (s *Session) Save(ctx context.Context) error {
	return s.Do(ctx, func(d *document.Document) error {
		if s.opts.Path == "" {
			return errors.New(errors.ErrCodeInvalidInput, "no file to save to")
		}
		return WriteFile(d, s.opts.Path)
	})
}

// Path returns the file the current document belongs to.
func (s *Session) Path() string { return s.opts.Path }

func (s *Session) apply(fn Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeInternal, "command failed: %v", r)
			s.logger.Error("command panicked", "panic", r)
		}
	}()
	return fn(s.doc)
}

func (s *Session) install(l loaded) error {
	if l.err != nil {
		s.logger.Warn("load failed", "path", l.path, "err", l.err)
		return l.err
	}
	s.doc = l.doc
	s.opts.Path = l.path
	s.saved = l.doc.Pool()
	s.logger.Info("opened", "path", l.path, "objects", l.doc.Pool().Len())
	return nil
}

// autosave writes the committed pool when it changed since the last write.
// It only reads committed state and never touches history.
func (s *Session) autosave() {
	if s.opts.AutosavePath == "" || s.doc.Pool() == s.saved {
		return
	}
	data, err := s.doc.SaveProject()
	if err == nil {
		err = writeAtomic(s.opts.AutosavePath, data)
	}
	if err != nil {
		s.logger.Warn("autosave failed", "path", s.opts.AutosavePath, "err", err)
		return
	}
	s.saved = s.doc.Pool()
	s.logger.Debug("autosaved", "path", s.opts.AutosavePath, "bytes", len(data))
}
