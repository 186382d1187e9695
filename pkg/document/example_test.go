package document_test

import (
	"fmt"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// screen returns a working set showing one empty data mask.
func screen() *pool.Pool {
	return pool.NewPool(
		&pool.WorkingSet{Selectable: true, ActiveMask: pool.Some(1000)},
		&pool.DataMask{Header: pool.Header{ID: 1000}},
	)
}

func ExampleDocument_Commit() {
	doc := document.New(screen())

	// New objects go to the staging pool first
	btn, _ := doc.NewObject(pool.TypeButton, "OK")
	fmt.Println("staged:", doc.Staging().Has(btn.ObjectID()), "committed:", doc.Pool().Has(btn.ObjectID()))

	fmt.Println("commit:", doc.Commit())
	fmt.Println("commit again:", doc.Commit())

	doc.Undo()
	fmt.Println("after undo:", doc.Pool().Has(6000), "can redo:", doc.CanRedo())

	doc.Redo()
	fmt.Println("after redo:", doc.Pool().Has(6000), doc.Name(6000))
	// Output:
	// staged: true committed: false
	// commit: true
	// commit again: false
	// after undo: false can redo: true
	// after redo: true OK
}

func ExampleDocument_CopyAsNew() {
	doc := document.New(screen())
	_, _ = doc.NewObject(pool.TypeButton, "OK")
	_, _ = doc.NewObject(pool.TypeOutputString, "Label")
	_ = doc.AddChild(6000, 11000, 2, 2)
	doc.Commit()

	doc.Select(pool.Some(6000))
	doc.CommitSelection()

	// The copy gets a free ID but keeps pointing at the original's label
	objs, _ := doc.CopyAsNew()
	fmt.Println("copy:", objs[0].ObjectID(), "children:", pool.Children(objs[0]))

	fmt.Println("pasted:", doc.Paste(objs))
	fmt.Println("name:", doc.Name(6001))
	// Output:
	// copy: 6001 children: [11000]
	// pasted: true
	// name: Button1
}

func ExampleDocument_Import() {
	doc := document.New(screen())
	_, _ = doc.NewObject(pool.TypeButton, "OK")
	doc.Commit()

	// The source has its own button 6000 inside container 3000
	src := pool.NewPool(
		&pool.Container{Header: pool.Header{ID: 3000}, Objects: []pool.ObjectRef{{ID: 6000}}},
		&pool.Button{Header: pool.Header{ID: 6000}},
	)
	names := map[pool.ObjectID]string{3000: "Panel", 6000: "OK"}

	res, err := doc.Import(src, []pool.ObjectID{3000}, names)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, id := range []pool.ObjectID{3000, 6000} {
		dst := res.Mapping[id]
		fmt.Printf("%d -> %d %s\n", id, dst, doc.Name(dst))
	}
	panel, _ := doc.Pool().Get(3000)
	fmt.Println("panel children:", pool.Children(panel))
	sel, _ := doc.Selected().Get()
	fmt.Println("selected:", sel)
	// Output:
	// 3000 -> 3000 Panel
	// 6000 -> 6001 Button1
	// panel children: [6001]
	// selected: 3000
}
