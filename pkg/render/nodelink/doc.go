// Package nodelink renders the display hierarchy of an object pool as a
// node-link diagram.
//
// # Overview
//
// Every object becomes a box labelled with its name, ID and type. Solid
// arrows are structural references (a mask showing a container, a
// container showing a button). With [Options.Shared], dashed arrows show
// references to shared objects such as fonts, variables and macros.
// References to IDs that are not in the pool point at a dashed
// "missing object" node.
//
// # Usage
//
//	dot := nodelink.ToDOT(doc.Pool(), nodelink.Options{Name: doc.Name})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
