package editor

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

// start runs s until the test ends and returns a function that stops it
// and waits for Run to return.
func start(t *testing.T, s *Session) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = s.Run(ctx)
		close(done)
	}()
	stop = func() {
		cancel()
		<-done
	}
	t.Cleanup(stop)
	return stop
}

func addButton(d *document.Document) error {
	if _, err := d.NewObject(pool.TypeButton, ""); err != nil {
		return err
	}
	d.Commit()
	return nil
}

func TestSessionDo(t *testing.T) {
	s := NewSession(document.New(pooltest.Minimal()), Options{Logger: quietLogger()})
	start(t, s)
	ctx := context.Background()

	if err := s.Do(ctx, addButton); err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	var has bool
	if err := s.View(ctx, func(d *document.Document) { has = d.Pool().Has(6000) }); err != nil {
		t.Fatalf("View() error: %v", err)
	}
	if !has {
		t.Error("button 6000 should be committed")
	}

	err := s.Do(ctx, func(d *document.Document) error { return d.SetName(42, "x") })
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Do() error = %v, want NOT_FOUND", err)
	}
}

func TestSessionDoRecoversPanic(t *testing.T) {
	s := NewSession(nil, Options{Logger: quietLogger()})
	start(t, s)

	err := s.Do(context.Background(), func(*document.Document) error { panic("boom") })
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Do() error = %v, want INTERNAL_ERROR", err)
	}
	if err := s.Do(context.Background(), func(*document.Document) error { return nil }); err != nil {
		t.Errorf("session should keep running after a panic: %v", err)
	}
}

func TestSessionDoAfterStop(t *testing.T) {
	s := NewSession(nil, Options{Logger: quietLogger()})
	stop := start(t, s)
	stop()

	err := s.Do(context.Background(), func(*document.Document) error { return nil })
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Do() after stop = %v, want INTERNAL_ERROR", err)
	}
}

func TestSessionOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.iop")
	src := document.New(pooltest.Every())
	if err := WriteFile(src, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	s := NewSession(nil, Options{Logger: quietLogger()})
	start(t, s)
	ctx := context.Background()

	if err := <-s.Open(ctx, path); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	var n int
	_ = s.View(ctx, func(d *document.Document) { n = d.Pool().Len() })
	if n != src.Pool().Len() {
		t.Errorf("opened pool has %d objects, want %d", n, src.Pool().Len())
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}

	// A broken file leaves the open document in place.
	bad := filepath.Join(dir, "bad.aitp")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := <-s.Open(ctx, bad); !errors.Is(err, errors.ErrCodeMalformedProject) {
		t.Errorf("Open(bad) error = %v, want MALFORMED_PROJECT", err)
	}
	_ = s.View(ctx, func(d *document.Document) { n = d.Pool().Len() })
	if n != src.Pool().Len() {
		t.Errorf("failed load replaced the document (%d objects)", n)
	}
}

func TestSessionSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.aitp")
	s := NewSession(document.New(pooltest.Minimal()), Options{Path: path, Logger: quietLogger()})
	start(t, s)
	ctx := context.Background()

	if err := s.Do(ctx, addButton); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	d, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !d.Pool().Has(6000) {
		t.Error("saved project should contain button 6000")
	}
}

func TestSessionSaveWithoutPath(t *testing.T) {
	s := NewSession(nil, Options{Logger: quietLogger()})
	start(t, s)
	if err := s.Save(context.Background()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Save() error = %v, want INVALID_INPUT", err)
	}
}

func TestAutosaveOnTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.aitp")
	s := NewSession(document.New(pooltest.Minimal()), Options{
		AutosavePath:     path,
		AutosaveInterval: 5 * time.Millisecond,
		Logger:           quietLogger(),
	})
	start(t, s)

	// Nothing changed yet: no file.
	time.Sleep(30 * time.Millisecond)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("autosave wrote an unchanged document (err=%v)", err)
	}

	if err := s.Do(context.Background(), addButton); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("autosave file never appeared")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAutosaveOnStopKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.aitp")
	doc := document.New(pooltest.Minimal())
	s := NewSession(doc, Options{
		AutosavePath:     path,
		AutosaveInterval: time.Hour,
		Logger:           quietLogger(),
	})
	stop := start(t, s)

	if err := s.Do(context.Background(), addButton); err != nil {
		t.Fatal(err)
	}
	stop()

	saved, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(autosave) error: %v", err)
	}
	if !saved.Pool().Has(6000) {
		t.Error("autosave should hold the committed button")
	}
	if doc.UndoDepth() != 1 || doc.CanRedo() {
		t.Errorf("autosave changed history: undo=%d redo=%v", doc.UndoDepth(), doc.CanRedo())
	}
}

func TestIsRawPool(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pool.iop", true},
		{"POOL.IOP", true},
		{"project.aitp", false},
		{"project.json", false},
		{"iop", false},
	}
	for _, tt := range tests {
		if got := IsRawPool(tt.path); got != tt.want {
			t.Errorf("IsRawPool(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadFileErrors(t *testing.T) {
	if _, err := ReadFile(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ReadFile(\"\") error = %v, want INVALID_PATH", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.aitp")); err == nil {
		t.Error("ReadFile(missing) should fail")
	}
}
