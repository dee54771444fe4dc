package palette

import (
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	src := `
tiles:
  - id: ground
    name: Ground
    image: ground.png
  - id: brick
    name: Brick
    image: brick.png
  - id: water
    name: Water
`
	p, err := ParseManifest([]byte(src))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(p))
	}
	if p[0].ID != "ground" || p[1].ID != "brick" || p[2].ID != "water" {
		t.Fatalf("manifest order not preserved: %+v", p)
	}
	if p[2].Data != nil {
		t.Fatalf("tile without image should have nil Data")
	}
	if p[0].Data == nil || *p[0].Data != "ground.png" {
		t.Fatalf("ground image reference lost")
	}
}

func TestParseManifestRejectsBadPalettes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "duplicate_id",
			src:  "tiles:\n  - id: a\n    name: A\n  - id: a\n    name: B\n",
			want: "duplicate",
		},
		{
			name: "reserved_empty",
			src:  "tiles:\n  - id: empty\n    name: Nothing\n",
			want: "reserved",
		},
		{
			name: "missing_id",
			src:  "tiles:\n  - name: Nameless\n",
			want: "no id",
		},
		{
			name: "invalid_yaml",
			src:  "tiles: [",
			want: "parse palette manifest",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(c.src))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := "a.png"
	p := Palette{{ID: "a", Name: "A", Data: &img}}
	c := p.Clone()
	*c[0].Data = "changed.png"
	if *p[0].Data != "a.png" {
		t.Fatalf("Clone shared Data pointer with the original")
	}
}

func TestHas(t *testing.T) {
	p := Palette{{ID: "a"}, {ID: "b"}}
	if !p.Has("a") || !p.Has("b") {
		t.Fatalf("Has missed a palette entry")
	}
	if !p.Has("empty") {
		t.Fatalf("the empty sentinel is always a valid id")
	}
	if p.Has("c") {
		t.Fatalf("Has accepted an unknown id")
	}
}
