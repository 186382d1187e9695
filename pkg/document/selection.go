package document

import "github.com/matzehuels/vtdesigner/pkg/pool"

// Selected returns the committed selection.
func (d *Document) Selected() pool.NullableObjectID { return d.selected }

// StagedSelection returns the selection that [Document.CommitSelection]
// would make current.
func (d *Document) StagedSelection() pool.NullableObjectID { return d.staged }

// Select stages a selection. Pass [pool.NoObject] to clear it.
func (d *Document) Select(id pool.NullableObjectID) { d.staged = id }

// CommitSelection makes the staged selection current and reports whether
// it changed. Only non-empty selections are recorded in history.
func (d *Document) CommitSelection() bool {
	if d.staged == d.selected {
		return false
	}
	if !d.staged.IsNull() {
		clear(d.selRedo)
		d.selRedo = d.selRedo[:0]
		d.selUndo = push(d.selUndo, d.selected, SelectionHistory)
	}
	d.selected = d.staged
	return true
}

// SelectPrevious returns to the selection before the last committed one.
func (d *Document) SelectPrevious() bool {
	prev, ok := pop(&d.selUndo)
	if !ok {
		return false
	}
	d.selRedo = push(d.selRedo, d.selected, SelectionHistory)
	d.selected, d.staged = prev, prev
	return true
}

// SelectNext reverts the last [Document.SelectPrevious].
func (d *Document) SelectNext() bool {
	next, ok := pop(&d.selRedo)
	if !ok {
		return false
	}
	d.selUndo = push(d.selUndo, d.selected, SelectionHistory)
	d.selected, d.staged = next, next
	return true
}

// SelectedObject returns the committed object that is selected.
func (d *Document) SelectedObject() (pool.Object, bool) {
	id, ok := d.selected.Get()
	if !ok {
		return nil, false
	}
	return d.committed.Get(id)
}
