// Package projectfile reads and writes vtdesigner project files (".aitp").
//
// A project file is pretty-printed JSON wrapping a raw object pool together
// with per-object names and notes and a few editor settings:
//
//	{
//	  "version": 1,
//	  "object_pool_data": [0, 0, 0, ...],
//	  "object_metadata": {"5000": {"name": "Start", "notes": null}},
//	  "settings": {"mask_size": 500, "last_selected": 5000}
//	}
//
// The pool bytes are written as a JSON number array. On read a base64
// string is accepted as well.
package projectfile

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Version is the project file format version written by [New].
const Version = 1

// DefaultMaskSize is the preview mask size used when a project has none.
const DefaultMaskSize = 500

// minPoolBytes is the smallest pool payload accepted by [File.Pool].
const minPoolBytes = 4

// File is the decoded project file.
type File struct {
	Version  int                        `json:"version"`
	PoolData PoolData                   `json:"object_pool_data"`
	Metadata map[pool.ObjectID]Metadata `json:"object_metadata"`
	Settings Settings                   `json:"settings"`
}

// Metadata is the user-supplied information about one object.
type Metadata struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
}

// Settings holds project-level editor state.
type Settings struct {
	MaskSize     uint16                `json:"mask_size"`
	LastSelected pool.NullableObjectID `json:"last_selected"`
}

// PoolData is raw IOP bytes.
type PoolData []byte

// MarshalJSON writes the bytes as an array of numbers.
func (d PoolData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(d)*4 + 2)
	buf.WriteByte('[')
	for i, b := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d", b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an array of numbers or a base64 string.
func (d *PoolData) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*d = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("object_pool_data: %w", err)
		}
		*d = raw
		return nil
	}
	var nums []int
	if err := json.Unmarshal(b, &nums); err != nil {
		return fmt.Errorf("object_pool_data: %w", err)
	}
	raw := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 0xFF {
			return fmt.Errorf("object_pool_data: value %d at index %d is not a byte", n, i)
		}
		raw[i] = byte(n)
	}
	*d = raw
	return nil
}

// New builds a project file from an encoded pool and its metadata.
func New(data []byte, metadata map[pool.ObjectID]Metadata, settings Settings) *File {
	if metadata == nil {
		metadata = make(map[pool.ObjectID]Metadata)
	}
	return &File{
		Version:  Version,
		PoolData: data,
		Metadata: metadata,
		Settings: settings,
	}
}

// Marshal encodes f as indented JSON.
func Marshal(f *File) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode project")
	}
	return data, nil
}

// Unmarshal parses a project file. A missing mask size falls back to
// [DefaultMaskSize].
func Unmarshal(data []byte) (*File, error) {
	f := &File{Settings: Settings{MaskSize: DefaultMaskSize}}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedProject, err, "parse project")
	}
	if f.Version > Version {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"project version %d is newer than supported version %d", f.Version, Version)
	}
	if f.Metadata == nil {
		f.Metadata = make(map[pool.ObjectID]Metadata)
	}
	return f, nil
}

// Pool decodes the embedded object pool.
func (f *File) Pool() (*pool.Pool, error) {
	if len(f.PoolData) < minPoolBytes {
		return nil, errors.New(errors.ErrCodeMalformedProject,
			"object pool data is too small (%d bytes)", len(f.PoolData))
	}
	p, err := iop.Decode(f.PoolData)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedProject, err, "decode object pool")
	}
	if p.Len() == 0 {
		return nil, errors.New(errors.ErrCodeMalformedProject, "object pool data holds no objects")
	}
	return p, nil
}

// Names returns the non-empty names from the metadata.
func (f *File) Names() map[pool.ObjectID]string {
	names := make(map[pool.ObjectID]string, len(f.Metadata))
	for id, m := range f.Metadata {
		if m.Name != nil && *m.Name != "" {
			names[id] = *m.Name
		}
	}
	return names
}

// Notes returns the non-empty notes from the metadata.
func (f *File) Notes() map[pool.ObjectID]string {
	notes := make(map[pool.ObjectID]string)
	for id, m := range f.Metadata {
		if m.Notes != nil && *m.Notes != "" {
			notes[id] = *m.Notes
		}
	}
	return notes
}
