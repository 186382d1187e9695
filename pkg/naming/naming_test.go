package naming

import (
	"testing"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func TestDefaultName(t *testing.T) {
	if got := DefaultName(5000, pool.TypeKey); got != "Object 5000 (Key)" {
		t.Errorf("DefaultName() = %q, want %q", got, "Object 5000 (Key)")
	}
}

func TestNameFor(t *testing.T) {
	tests := []struct {
		name     string
		typ      pool.ObjectType
		existing map[string]pool.ObjectType
		want     string
	}{
		{"empty", pool.TypeButton, nil, "Button1"},
		{"next free", pool.TypeButton, map[string]pool.ObjectType{"Button1": pool.TypeButton}, "Button2"},
		{"fills gap", pool.TypeButton, map[string]pool.ObjectType{
			"Button1": pool.TypeButton, "Button3": pool.TypeButton,
		}, "Button2"},
		{"other type", pool.TypeKey, map[string]pool.ObjectType{"Button1": pool.TypeButton}, "Key1"},
		{"user name collides", pool.TypeKey, map[string]pool.ObjectType{"Key1": pool.TypeButton}, "Key2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFor(tt.typ, tt.existing); got != tt.want {
				t.Errorf("NameFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamer_Batch(t *testing.T) {
	n := NewNamer(nil, map[pool.ObjectID]string{6000: "Button2"})

	want := []string{"Button1", "Button3", "Button4"}
	for _, w := range want {
		if got := n.Next(pool.TypeButton); got != w {
			t.Errorf("Next() = %q, want %q", got, w)
		}
	}

	n.Reserve("Key1", pool.TypeKey)
	if got := n.Next(pool.TypeKey); got != "Key2" {
		t.Errorf("Next() after Reserve = %q, want %q", got, "Key2")
	}
	if !n.Taken("Button3") {
		t.Error("Taken(Button3) = false, want true")
	}
}

func TestApply(t *testing.T) {
	p := pooltest.Minimal()
	names := map[pool.ObjectID]string{0: "Main"}

	named := Apply(p, names)
	if len(named) != 1 || named[0] != 1000 {
		t.Errorf("Apply() named %v, want [1000]", named)
	}
	if names[0] != "Main" {
		t.Errorf("Apply() changed user name to %q", names[0])
	}
	if names[1000] != "DataMask1" {
		t.Errorf("names[1000] = %q, want %q", names[1000], "DataMask1")
	}

	if again := Apply(p, names); len(again) != 0 {
		t.Errorf("second Apply() named %v, want none", again)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("Start"); err != nil {
		t.Errorf("Validate(Start) error: %v", err)
	}
	if err := Validate("  "); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("Validate(blank) error = %v, want INVALID_NAME", err)
	}
}

func TestCIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Start", "START"},
		{"Button 1", "BUTTON_1"},
		{"Object 5000 (Key)", "OBJECT_5000__KEY_"},
		{"1st", "_1ST"},
		{"größe", "GR__E"},
		{"", "_"},
	}

	for _, tt := range tests {
		if got := CIdentifier(tt.in); got != tt.want {
			t.Errorf("CIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
