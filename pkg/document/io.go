package document

import (
	"time"

	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/observability"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/projectfile"
)

// Load formats reported to observability hooks.
const (
	FormatIOP     = "iop"
	FormatProject = "project"
)

// FromIOP creates a document from a raw object pool.
func FromIOP(data []byte) (*Document, error) {
	start := time.Now()
	p, err := iop.Decode(data)
	if err != nil {
		observability.Document().OnLoad(FormatIOP, 0, time.Since(start), err)
		return nil, err
	}
	d := New(p)
	observability.Document().OnLoad(FormatIOP, p.Len(), time.Since(start), nil)
	return d, nil
}

// ExportIOP encodes the committed pool as a raw object pool.
func (d *Document) ExportIOP() ([]byte, error) {
	start := time.Now()
	data, err := iop.Encode(d.committed)
	observability.Document().OnSave(FormatIOP, len(data), time.Since(start), err)
	return data, err
}

// ImportIOP decodes a raw object pool and imports the chosen objects from
// it. See [Document.Import].
func (d *Document) ImportIOP(data []byte, chosen []pool.ObjectID) (*ImportResult, error) {
	src, err := iop.Decode(data)
	if err != nil {
		return nil, err
	}
	return d.Import(src, chosen, nil)
}

// LoadProject creates a document from a project file. Stored names and
// notes are restored, remaining objects are named, and the last selection
// is restored when it still exists.
func LoadProject(data []byte) (*Document, error) {
	start := time.Now()
	d, err := loadProject(data)
	objects := 0
	if d != nil {
		objects = d.committed.Len()
	}
	observability.Document().OnLoad(FormatProject, objects, time.Since(start), err)
	return d, err
}

func loadProject(data []byte) (*Document, error) {
	f, err := projectfile.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	p, err := f.Pool()
	if err != nil {
		return nil, err
	}

	d := newDocument(p, f.Names())
	for id, notes := range f.Notes() {
		inf := d.info[id]
		inf.Notes = notes
		d.info[id] = inf
	}
	d.SetMaskSize(f.Settings.MaskSize)
	if id, ok := f.Settings.LastSelected.Get(); ok && p.Has(id) {
		d.selected = pool.Some(id)
		d.staged = d.selected
	}
	return d, nil
}

// SaveProject encodes the committed pool with names, notes and settings.
// A staged selection takes precedence over the committed one.
func (d *Document) SaveProject() ([]byte, error) {
	start := time.Now()
	data, err := d.saveProject()
	observability.Document().OnSave(FormatProject, len(data), time.Since(start), err)
	return data, err
}

func (d *Document) saveProject() ([]byte, error) {
	raw, err := iop.Encode(d.committed)
	if err != nil {
		return nil, err
	}

	meta := make(map[pool.ObjectID]projectfile.Metadata)
	for id, inf := range d.info {
		if !d.committed.Has(id) || (inf.Name == "" && inf.Notes == "") {
			continue
		}
		var m projectfile.Metadata
		if inf.Name != "" {
			m.Name = &inf.Name
		}
		if inf.Notes != "" {
			m.Notes = &inf.Notes
		}
		meta[id] = m
	}

	last := d.staged
	if last.IsNull() {
		last = d.selected
	}
	f := projectfile.New(raw, meta, projectfile.Settings{
		MaskSize:     d.maskSize,
		LastSelected: last,
	})
	return projectfile.Marshal(f)
}
