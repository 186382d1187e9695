package naming_test

import (
	"fmt"

	"github.com/matzehuels/vtdesigner/pkg/naming"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

func ExampleNameFor() {
	existing := map[string]pool.ObjectType{
		"Button1": pool.TypeButton,
		"Button3": pool.TypeButton,
	}
	fmt.Println(naming.NameFor(pool.TypeButton, existing))
	fmt.Println(naming.NameFor(pool.TypeKey, existing))
	// Output:
	// Button2
	// Key1
}

func ExampleApply() {
	p := pool.NewPool(
		&pool.WorkingSet{},
		&pool.DataMask{Header: pool.Header{ID: 1000}},
		&pool.DataMask{Header: pool.Header{ID: 1001}},
	)
	names := map[pool.ObjectID]string{1000: "Main"}

	// Only unnamed objects are named; user names are kept
	fmt.Println("named:", naming.Apply(p, names))
	fmt.Println(names[0], names[1000], names[1001])
	// Output:
	// named: [0 1001]
	// WorkingSet1 Main DataMask1
}

func ExampleCIdentifier() {
	for _, name := range []string{"Start button", "2nd page", "Übersicht"} {
		fmt.Println(naming.CIdentifier(name))
	}
	// Output:
	// START_BUTTON
	// _2ND_PAGE
	// _BERSICHT
}

func ExampleDefaultName() {
	fmt.Println(naming.DefaultName(7000, pool.TypeInputBoolean))
	// Output:
	// Object 7000 (Input Boolean)
}
