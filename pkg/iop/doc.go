// Package iop reads and writes raw ISO 11783-6 object pools (".iop" files).
//
// # Format
//
// A pool is a plain concatenation of objects. Each object starts with its
// ID (2 bytes) and type code (1 byte), followed by the type's attributes in
// the order defined by the object's Walk method. All multi-byte values are
// little-endian. Variable-length lists are preceded by their element counts,
// which the standard places ahead of the lists they describe. Macro
// references are an event byte followed by a 16-bit macro ID.
//
// # Strictness
//
// [Decode] rejects truncated input, unknown type codes and duplicate IDs
// with MALFORMED_POOL. It does not check references: a decoded pool may
// point at IDs it does not contain.
//
// # Sizes
//
// [ObjectSize] and [Largest] report encoded sizes, which is what limits
// how much of a pool a terminal can hold.
package iop
