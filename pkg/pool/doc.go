// Package pool provides the ISOBUS Virtual Terminal object pool: typed
// objects addressed by 16-bit IDs and the references between them.
//
// # Overview
//
// An object pool describes an operator display per ISO 11783-6. Every
// [Object] carries its own [ObjectID] and zero or more reference fields
// pointing at other objects: child object lists, soft key masks, attribute
// objects, variables and macros.
//
// References are either structural or shared (see [Edge]). Structural
// references express display containment (a data mask contains a container
// which contains a button) and must never form a cycle. Shared references
// point at resources such as font attributes or number variables that any
// number of objects may use.
//
// # Identifier Ranges
//
// Each [ObjectType] owns a fixed, disjoint ID range (data masks 1000-1999,
// buttons 6000-6999, ...). [AllocateID] returns the lowest free ID of a
// type's range and fails with RANGE_EXHAUSTED when the range is full.
// [Allocator] reserves IDs across a batch so that objects created together
// never collide before they are inserted.
//
// # Walking Objects
//
// Every object type implements Walk, which hands each attribute to a
// [Visitor] in wire order. Codecs, cloning, equality, reference listing
// ([References], [Children]), remapping ([RemapReferences]) and detaching
// ([Detach]) are all visitors, so a new attribute only has to be added to
// one Walk method.
//
// # Missing Objects
//
// A [Pool] never validates references. An object may point at an ID that
// is not in the pool, and every reader must treat that as a missing object
// rather than fail.
package pool
