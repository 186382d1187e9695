// Package transform provides graph algorithms over object pools.
//
// # Cycle Guard
//
// Structural references must stay acyclic. [WouldCycle] answers, before an
// edit is made, whether adding a structural reference from a parent to a
// child would close a cycle. Editors call it to disable invalid choices.
// [FindCycle] reports an existing cycle in a loaded pool and [BreakCycles]
// removes the back edges that close cycles.
//
// All traversals keep a visited set, so they terminate on pools that
// already contain cycles.
//
// # Consistency
//
// [Check] lists what a loaded pool gets wrong: dangling references, IDs
// outside their type's range, structural cycles and a missing working set.
// [Repair] fixes the first and third kind in place.
//
// # Closure
//
// [Closure] collects everything a set of objects depends on: children,
// attribute objects, variables and macros. Import merges use it so that
// imported objects never reference objects left behind in the source pool.
package transform
