// Package pkg holds the libraries behind vtdesigner, an editor for ISOBUS
// virtual terminal object pools (ISO 11783-6).
//
// # Overview
//
// The packages build on each other:
//
//  1. [pool] - Object model: the 49 object types, ID ranges, references,
//     allocation and remapping. [pool/transform] adds cycle checks and
//     reference closures.
//  2. [iop] - Binary codec for raw object pools.
//  3. [naming] - Generated object names and C identifiers.
//  4. [projectfile] - JSON project files with names, notes and settings.
//  5. [document] - The editable document: staging, commit, undo/redo,
//     selection history, copy/paste and import.
//  6. [editor] - Single-writer sessions with background loads and
//     autosave.
//
// Supporting packages: [export] (C headers and YAML/JSON dumps),
// [render/nodelink] (Graphviz hierarchy diagrams), [clipboard] and [cache]
// (clipboard storage in files or Redis), [config] (TOML settings),
// [observability] (hooks), [errors] (coded errors) and [buildinfo].
//
// # Quick Start
//
//	data, _ := os.ReadFile("pool.iop")
//	doc, err := document.FromIOP(data)
//	if err != nil {
//	    return err
//	}
//	btn, _ := doc.NewObject(pool.TypeButton, "OK")
//	_ = doc.AddChild(1000, btn.ObjectID(), 10, 10)
//	doc.Commit()
//	project, _ := doc.SaveProject()
package pkg
