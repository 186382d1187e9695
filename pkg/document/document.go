package document

import (
	"github.com/matzehuels/vtdesigner/pkg/observability"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// History capacities.
const (
	PoolHistory      = 10
	SelectionHistory = 20
)

// DefaultMaskSize is the preview mask size of a new document.
const DefaultMaskSize = 500

// Info is the user-supplied metadata of one object.
type Info struct {
	Name  string
	Notes string
}

// Document is an object pool under edit. The zero value is not usable;
// create documents with [New], [FromIOP] or [LoadProject].
type Document struct {
	committed *pool.Pool
	staging   *pool.Pool
	undo      []*pool.Pool
	redo      []*pool.Pool

	selected  pool.NullableObjectID
	staged    pool.NullableObjectID
	selUndo   []pool.NullableObjectID
	selRedo   []pool.NullableObjectID
	info      map[pool.ObjectID]Info
	maskSize  uint16
	image     pool.NullableObjectID
	hints     map[pool.ObjectType]pool.ObjectID // allocation cache
	nameCache map[pool.ObjectID]string          // default names
}

// New returns a document editing p, which the document takes ownership of.
// A nil pool starts an empty document. Every object receives a generated
// name.
func New(p *pool.Pool) *Document {
	return newDocument(p, nil)
}

func newDocument(p *pool.Pool, names map[pool.ObjectID]string) *Document {
	if p == nil {
		p = pool.NewPool()
	}
	d := &Document{
		committed: p,
		staging:   p.Clone(),
		info:      make(map[pool.ObjectID]Info, p.Len()),
		maskSize:  DefaultMaskSize,
	}
	for id, name := range names {
		d.info[id] = Info{Name: name}
	}
	d.ApplyNaming()
	d.invalidate()
	return d
}

// Pool returns the committed pool. Callers must not modify it.
func (d *Document) Pool() *pool.Pool { return d.committed }

// Staging returns the staging pool. Modify it through [Document.Stage] so
// the document's caches stay valid.
func (d *Document) Staging() *pool.Pool { return d.staging }

// Stage runs fn on the staging pool. Changes take effect on [Document.Commit].
func (d *Document) Stage(fn func(p *pool.Pool)) {
	fn(d.staging)
	d.hints = nil
}

// Dirty reports whether staging differs from the committed pool.
func (d *Document) Dirty() bool { return !d.staging.Equal(d.committed) }

// Revert discards staged changes.
func (d *Document) Revert() {
	d.staging = d.committed.Clone()
	d.hints = nil
}

// Commit promotes the staging pool. It returns false and leaves history
// untouched when nothing changed.
func (d *Document) Commit() bool {
	if !d.Dirty() {
		return false
	}
	clear(d.redo)
	d.redo = d.redo[:0]
	d.undo = push(d.undo, d.committed, PoolHistory)
	d.committed = d.staging.Clone()
	d.invalidate()
	d.ApplyNaming()
	observability.Document().OnCommit(d.committed.Len(), len(d.undo))
	return true
}

// Undo restores the pool before the last commit and discards staged
// changes. It returns false when there is nothing to undo.
func (d *Document) Undo() bool {
	snap, ok := pop(&d.undo)
	if !ok {
		return false
	}
	d.redo = push(d.redo, d.committed, PoolHistory)
	d.restore(snap)
	observability.Document().OnUndo(len(d.undo), len(d.redo))
	return true
}

// Redo reapplies the last undone commit.
func (d *Document) Redo() bool {
	snap, ok := pop(&d.redo)
	if !ok {
		return false
	}
	d.undo = push(d.undo, d.committed, PoolHistory)
	d.restore(snap)
	observability.Document().OnRedo(len(d.undo), len(d.redo))
	return true
}

// CanUndo reports whether [Document.Undo] would change anything.
func (d *Document) CanUndo() bool { return len(d.undo) > 0 }

// CanRedo reports whether [Document.Redo] would change anything.
func (d *Document) CanRedo() bool { return len(d.redo) > 0 }

// UndoDepth returns the number of commits that can be undone.
func (d *Document) UndoDepth() int { return len(d.undo) }

func (d *Document) restore(snap *pool.Pool) {
	d.committed = snap
	d.staging = snap.Clone()
	d.invalidate()
}

func (d *Document) invalidate() {
	d.hints = nil
	d.nameCache = nil
}

// MaskSize returns the preview mask size in pixels.
func (d *Document) MaskSize() uint16 { return d.maskSize }

// SetMaskSize sets the preview mask size. Zero restores the default.
func (d *Document) SetMaskSize(size uint16) {
	if size == 0 {
		size = DefaultMaskSize
	}
	d.maskSize = size
}

// RequestImage asks the host to supply image bytes for a picture object.
// Only the latest request is kept.
func (d *Document) RequestImage(id pool.ObjectID) {
	d.image = pool.Some(id)
}

// TakeImageRequest returns and clears the pending image request.
func (d *Document) TakeImageRequest() (pool.ObjectID, bool) {
	id, ok := d.image.Get()
	d.image = pool.NoObject
	return id, ok
}

// push appends v and drops the oldest entries beyond limit.
func push[T any](s []T, v T, limit int) []T {
	s = append(s, v)
	if over := len(s) - limit; over > 0 {
		clear(s[:over])
		s = append(s[:0], s[over:]...)
	}
	return s
}

func pop[T any](s *[]T) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v := (*s)[n-1]
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return v, true
}
