// Package naming generates and checks human-readable object names.
//
// Generated names have the form <Ident><n>, for example "Button1" or
// "OutputString12", where n is the smallest positive number whose name is
// not taken yet. Objects without any name fall back to [DefaultName].
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// DefaultName is the display name of an object that has not been named.
func DefaultName(id pool.ObjectID, t pool.ObjectType) string {
	return fmt.Sprintf("Object %d (%s)", id, t)
}

// NameFor returns the first generated name for t that is not a key of
// existing. The map values record which type holds each name.
func NameFor(t pool.ObjectType, existing map[string]pool.ObjectType) string {
	prefix := t.Ident()
	for n := 1; ; n++ {
		name := prefix + strconv.Itoa(n)
		if _, taken := existing[name]; !taken {
			return name
		}
	}
}

// Validate checks a user-supplied name.
func Validate(name string) error {
	return errors.ValidateObjectName(name)
}

// CIdentifier converts name into an upper-case C identifier. ASCII letters
// and digits are kept, everything else becomes an underscore.
func CIdentifier(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
