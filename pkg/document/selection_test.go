package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func TestSelection_CommitAndWalk(t *testing.T) {
	doc := document.New(pooltest.Every())

	for _, id := range []pool.ObjectID{1000, 3000, 6000} {
		doc.Select(pool.Some(id))
		require.True(t, doc.CommitSelection())
	}
	assert.False(t, doc.CommitSelection(), "unchanged selection")
	assert.Equal(t, pool.Some(6000), doc.Selected())

	require.True(t, doc.SelectPrevious())
	assert.Equal(t, pool.Some(3000), doc.Selected())
	assert.Equal(t, pool.Some(3000), doc.StagedSelection())

	require.True(t, doc.SelectNext())
	assert.Equal(t, pool.Some(6000), doc.Selected())
	assert.False(t, doc.SelectNext())
}

func TestSelection_ClearIsNotRecorded(t *testing.T) {
	doc := document.New(pooltest.Minimal())

	doc.Select(pool.Some(1000))
	doc.CommitSelection()
	doc.Select(pool.NoObject)
	require.True(t, doc.CommitSelection())
	assert.True(t, doc.Selected().IsNull())

	// Only the step from nothing to 1000 is in history.
	require.True(t, doc.SelectPrevious())
	assert.True(t, doc.Selected().IsNull())
	assert.False(t, doc.SelectPrevious())
}

func TestSelection_IndependentOfPoolHistory(t *testing.T) {
	doc := document.New(pooltest.Minimal())
	doc.Select(pool.Some(1000))
	doc.CommitSelection()

	_, err := doc.NewObject(pool.TypeButton, "")
	require.NoError(t, err)
	doc.Commit()
	doc.Undo()

	assert.Equal(t, pool.Some(1000), doc.Selected())
}

func TestSelection_Capacity(t *testing.T) {
	doc := document.New(nil)
	for i := 0; i < document.SelectionHistory+5; i++ {
		doc.Select(pool.Some(pool.ObjectID(3000 + i)))
		doc.CommitSelection()
	}

	steps := 0
	for doc.SelectPrevious() {
		steps++
	}
	assert.Equal(t, document.SelectionHistory, steps)
	assert.Equal(t, pool.Some(3004), doc.Selected())
}

func TestSelectedObject_Missing(t *testing.T) {
	doc := document.New(pooltest.Minimal())
	doc.Select(pool.Some(4242))
	doc.CommitSelection()

	_, ok := doc.SelectedObject()
	assert.False(t, ok)
	assert.Nil(t, doc.CopyExact())
	_, err := doc.CopyAsNew()
	assert.Error(t, err)
}
