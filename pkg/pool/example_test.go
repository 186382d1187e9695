package pool_test

import (
	"fmt"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

func ExampleAllocateID() {
	// A pool with data masks 1000 and 1002 leaves a gap at 1001
	p := pool.NewPool(
		&pool.WorkingSet{ActiveMask: pool.Some(1000)},
		&pool.DataMask{Header: pool.Header{ID: 1000}},
		&pool.DataMask{Header: pool.Header{ID: 1002}},
	)

	mask, _ := pool.AllocateID(p, pool.TypeDataMask)
	button, _ := pool.AllocateID(p, pool.TypeButton)
	fmt.Println("next data mask:", mask)
	fmt.Println("next button:", button)

	// The working set range holds a single ID, which is taken
	_, err := pool.AllocateID(p, pool.TypeWorkingSet)
	fmt.Println(err)
	// Output:
	// next data mask: 1001
	// next button: 6000
	// RANGE_EXHAUSTED: no free ID left for Working Set (0-0)
}

func ExampleAllocator() {
	p := pool.NewPool(&pool.Key{Header: pool.Header{ID: 5000}})

	// Every ID is reserved as it is handed out, before anything is inserted
	alloc := pool.NewAllocator(p)
	for range 3 {
		id, _ := alloc.Next(pool.TypeKey)
		fmt.Println(id)
	}
	// Output:
	// 5001
	// 5002
	// 5003
}

func ExampleRemapReferences() {
	btn := &pool.Button{
		Header:  pool.Header{ID: 6000},
		Objects: []pool.ObjectRef{{ID: 11000, X: 4, Y: 4}, {ID: 11001}},
	}

	// 11000 moves to 11005; the button's own ID is not a reference
	n := pool.RemapReferences(btn, map[pool.ObjectID]pool.ObjectID{
		11000: 11005,
		6000:  6001,
	})

	fmt.Println("rewritten:", n)
	fmt.Println("children:", pool.Children(btn))
	fmt.Println("own ID:", btn.ObjectID())
	// Output:
	// rewritten: 1
	// children: [11005 11001]
	// own ID: 6000
}

func ExampleChildren() {
	str := &pool.OutputString{
		Header:         pool.Header{ID: 11000},
		FontAttributes: 23000,
		Variable:       pool.Some(22000),
	}
	btn := &pool.Button{Header: pool.Header{ID: 6000}}
	pool.AppendChild(btn, str.ObjectID(), 2, 2)

	// Children lists structural references only
	fmt.Println("button children:", pool.Children(btn))
	fmt.Println("string children:", pool.Children(str))
	fmt.Println("string references:", len(pool.References(str)))
	// Output:
	// button children: [11000]
	// string children: []
	// string references: 2
}
