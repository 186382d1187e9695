package iop_test

import (
	"fmt"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

func ExampleEncode() {
	p := pool.NewPool(
		&pool.NumberVariable{Header: pool.Header{ID: 21000}, Value: 42},
		&pool.StringVariable{Header: pool.Header{ID: 22000}, Value: "OK"},
	)

	data, err := iop.Encode(p)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// ID (little-endian), type code, then the attributes
	fmt.Printf("% x\n", data)
	fmt.Println("total:", iop.TotalSize(p), "bytes")
	// Output:
	// 08 52 15 2a 00 00 00 f0 55 16 02 00 4f 4b
	// total: 14 bytes
}

func ExampleDecode() {
	data := []byte{
		0x08, 0x52, 0x15, 0x2a, 0x00, 0x00, 0x00, // number variable 21000 = 42
		0xf0, 0x55, 0x16, 0x02, 0x00, 'O', 'K', // string variable 22000 = "OK"
	}

	p, err := iop.Decode(data)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, o := range p.Objects() {
		fmt.Println(o.ObjectID(), o.Type(), iop.ObjectSize(o))
	}

	// A pool cut off inside an object is rejected
	_, err = iop.Decode(data[:5])
	fmt.Println(errors.GetCode(err))
	// Output:
	// 21000 Number Variable 7
	// 22000 String Variable 7
	// MALFORMED_POOL
}
