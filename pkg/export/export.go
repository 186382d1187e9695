// Package export writes object pools in formats meant for other tools: C
// headers for ECU firmware and human-readable YAML or JSON dumps.
package export

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/vtdesigner/pkg/naming"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Namer returns the display name of an object.
type Namer func(pool.ObjectID) string

// Header writes a C header with one #define per object, sorted by ID.
// Names are converted with [naming.CIdentifier].
func Header(w io.Writer, p *pool.Pool, name Namer) error {
	var buf bytes.Buffer
	buf.WriteString("// Object IDs for the objects in the object pool.\n\n")
	buf.WriteString("#pragma once\n")
	fmt.Fprintf(&buf, "#define UNDEFINED %d\n", pool.NullObjectID)

	ids := p.IDs()
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(&buf, "#define %s %d\n", naming.CIdentifier(name(id)), id)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Entry is one object in a dump.
type Entry struct {
	ID     pool.ObjectID   `json:"id" yaml:"id"`
	Type   string          `json:"type" yaml:"type"`
	Name   string          `json:"name" yaml:"name"`
	Notes  string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Object pool.Object     `json:"object" yaml:"object"`
	Refs   []pool.ObjectID `json:"references,omitempty" yaml:"references,omitempty,flow"`
}

// Dump lists every object with its metadata, sorted by ID.
func Dump(p *pool.Pool, name Namer, notes func(pool.ObjectID) string) []Entry {
	out := make([]Entry, 0, p.Len())
	for _, o := range p.Objects() {
		e := Entry{
			ID:     o.ObjectID(),
			Type:   o.Type().Ident(),
			Name:   name(o.ObjectID()),
			Object: o,
		}
		if notes != nil {
			e.Notes = notes(o.ObjectID())
		}
		for _, r := range pool.References(o) {
			e.Refs = append(e.Refs, r.ID)
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// YAML writes a dump as YAML.
func YAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// JSON writes a dump as indented JSON.
func JSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
