package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func TestToDOT_Structural(t *testing.T) {
	dot := ToDOT(pooltest.Minimal(), Options{})

	for _, want := range []string{
		"digraph G {",
		`"0" [label="0"];`,
		`"1000" [label="1000"];`,
		`"0" -> "1000";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "dashed") {
		t.Errorf("ToDOT() without Shared should not draw dashed edges\n%s", dot)
	}
}

func TestToDOT_SharedAndMissing(t *testing.T) {
	p := pooltest.Minimal()
	dm, _ := p.Get(1000)
	dm.(*pool.DataMask).Objects = []pool.ObjectRef{{ID: 3000}}

	names := map[pool.ObjectID]string{0: "Main", 1000: "Home"}
	dot := ToDOT(p, Options{
		Name:     func(id pool.ObjectID) string { return names[id] },
		Shared:   true,
		Detailed: true,
	})

	for _, want := range []string{
		`"1000" [label="Home\n1000 (Data Mask)"];`,
		`"1000" -> "3000";`,
		`"3000" [label="missing object\n3000", style="rounded,dashed", fontcolor=red];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOT_SharedEdgesDashed(t *testing.T) {
	dot := ToDOT(pooltest.Every(), Options{Shared: true})
	if !strings.Contains(dot, `"7000" -> "23000" [style=dashed, color=grey40];`) {
		t.Errorf("expected dashed font edge from 7000\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(pooltest.Minimal(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("RenderSVG() output is not SVG: %.80s", svg)
	}
}
