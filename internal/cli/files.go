package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/editor"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// openDocument loads path as a raw pool or a project file.
func openDocument(path string) (*document.Document, error) {
	return editor.ReadFile(path)
}

// saveDocument writes doc back to path in the format implied by its
// extension.
func saveDocument(doc *document.Document, path string) error {
	if err := editor.WriteFile(doc, path); err != nil {
		return err
	}
	printFile(path)
	return nil
}

func formatName(path string) string {
	if editor.IsRawPool(path) {
		return "raw pool"
	}
	return "project"
}

// parseID parses a decimal object ID. 65535 is reserved for "no object".
func parseID(s string) (pool.ObjectID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil || v == uint64(pool.NullObjectID) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid object ID %q", s)
	}
	return pool.ObjectID(v), nil
}

// parseIDs parses IDs given as separate arguments or comma-separated lists.
func parseIDs(args []string) ([]pool.ObjectID, error) {
	var out []pool.ObjectID
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			id, err := parseID(part)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// parseType resolves an object type by name ("DataMask", "data mask").
func parseType(s string) (pool.ObjectType, error) {
	t, ok := pool.ParseType(s)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "unknown object type %q", s)
	}
	return t, nil
}

// describe formats an object as "Name (5000, Key)".
func describe(doc *document.Document, id pool.ObjectID) string {
	o, ok := doc.Pool().Get(id)
	if !ok {
		return fmt.Sprintf("%s (%d, missing)", doc.Name(id), id)
	}
	return fmt.Sprintf("%s (%d, %s)", doc.Name(id), id, o.Type().Ident())
}
