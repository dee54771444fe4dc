package document

import (
	"errors"
	"strings"
	"testing"

	"tilepaint/internal/grid"
	"tilepaint/internal/palette"
)

func testPalette() palette.Palette {
	img := "ground.png"
	return palette.Palette{
		{ID: "ground", Name: "Ground", Data: &img},
		{ID: "brick", Name: "Brick"},
	}
}

func TestExportIsStructuralSnapshot(t *testing.T) {
	s := grid.NewStore(3, 2)
	s.Set(1, 1, "ground")
	doc := Export(s, testPalette())

	// later mutation must not alter the exported document
	s.Set(1, 1, "brick")
	if doc.Grid[1][1] != "ground" {
		t.Fatalf("export aliased the live grid")
	}
	if doc.Cols != 3 || doc.Rows != 2 {
		t.Fatalf("export has dimensions %dx%d, want 3x2", doc.Cols, doc.Rows)
	}
}

func TestRoundTrip(t *testing.T) {
	s := grid.NewStore(4, 3)
	s.Set(0, 0, "brick")
	s.Set(3, 2, "ground")
	p := testPalette()

	data, err := Export(s, p).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Cols != 4 || got.Rows != 3 {
		t.Fatalf("round trip changed dimensions: %dx%d", got.Cols, got.Rows)
	}
	if !got.ToGrid().Equal(s.Snapshot()) {
		t.Fatalf("round trip changed the grid")
	}
	if len(got.Palette) != len(p) || got.Palette[0].ID != "ground" || got.Palette[1].ID != "brick" {
		t.Fatalf("round trip changed the palette: %+v", got.Palette)
	}
	if got.Palette[0].Data == nil || *got.Palette[0].Data != "ground.png" {
		t.Fatalf("round trip lost the image reference")
	}
}

func TestWireFormatFields(t *testing.T) {
	s := grid.NewStore(1, 1)
	data, err := Export(s, testPalette()).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, field := range []string{`"cols"`, `"rows"`, `"grid"`, `"palette"`, `"id"`, `"name"`, `"data"`} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("exported document is missing field %s:\n%s", field, data)
		}
	}
	if !strings.Contains(string(data), `"empty"`) {
		t.Fatalf("empty cells must serialize as the %q sentinel", "empty")
	}
	// absent image reference serializes as null, not as a missing field
	if !strings.Contains(string(data), `"data": null`) {
		t.Fatalf("tile without image should serialize data as null:\n%s", data)
	}
}

func TestDecodeParseFailure(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Unwrap() == nil {
		t.Fatalf("ParseError should carry the decoder's error")
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing_cols", `{"rows":1,"grid":[["empty"]]}`},
		{"missing_rows", `{"cols":1,"grid":[["empty"]]}`},
		{"missing_grid", `{"cols":1,"rows":1}`},
		{"row_count_mismatch", `{"cols":1,"rows":2,"grid":[["empty"]]}`},
		{"col_count_mismatch", `{"cols":2,"rows":1,"grid":[["empty"]]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode([]byte(c.src)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestDecodeWithoutPalette(t *testing.T) {
	doc, err := Decode([]byte(`{"cols":1,"rows":1,"grid":[["empty"]]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Palette != nil {
		t.Fatalf("absent palette must decode as nil so the importer keeps the current one")
	}
}
