// Package document is the editable object pool: a committed pool, a staging
// copy that edits are applied to, and bounded undo/redo history.
//
// # Editing Model
//
// Edits go to the staging pool, either through the helper methods
// ([Document.NewObject], [Document.Remove], [Document.AddChild]) or through
// [Document.Stage]. [Document.Commit] promotes staging to committed when
// the two differ and records the previous committed pool for undo:
//
//	doc := document.New(p)
//	btn, _ := doc.NewObject(pool.TypeButton, "")
//	doc.Commit()
//	doc.Undo() // btn is gone again
//
// History stores whole snapshots. Undo and redo restore them exactly and
// never re-derive IDs or names. At most [PoolHistory] pool snapshots and
// [SelectionHistory] selections are kept.
//
// # Selection
//
// Selection is tracked the same way but independently of pool history:
// [Document.Select] stages a selection, [Document.CommitSelection] makes it
// current, and [Document.SelectPrevious] / [Document.SelectNext] walk the
// selection history.
//
// # Names
//
// Names and notes live outside the pool and are not part of undo history.
// Objects without a user-supplied name receive a generated one (see
// package naming) when the document is created, loaded, or committed.
// Generated names never replace user-supplied ones.
//
// # Concurrency
//
// A Document is not safe for concurrent use. It is meant to be owned by a
// single editing loop (see package editor).
package document
