package models

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
)

const cubeOBJ = `# unit cube
v 0 0 0
v 0 1 0
v 1 1 0
v 1 0 0
v 1 1 1
v 1 0 1
v 0 1 1
v 0 0 1
s off
f 1 2 3
f 1 3 4
f 4 3 5
f 4 5 6
f 6 5 7
f 6 7 8
f 8 7 2
f 8 2 1
f 2 7 5
f 2 5 3
f 6 8 1
f 6 1 4
`

func TestParseOBJCube(t *testing.T) {
	mesh, stats, err := ParseOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if mesh.VertexCount() != 8 {
		t.Errorf("vertices = %d, want 8", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("triangles = %d, want 12", mesh.TriangleCount())
	}
	if stats.Skipped() != 0 {
		t.Errorf("skipped = %d, want 0", stats.Skipped())
	}
	if stats.IgnoredRecords != 2 {
		t.Errorf("ignored = %d, want 2 (comment and s)", stats.IgnoredRecords)
	}

	// Indices are 1-based in the file
	if got := mesh.Faces[0].V; got != [3]int{0, 1, 2} {
		t.Errorf("face 0 = %v, want [0 1 2]", got)
	}

	// Same geometry as the built-in cube
	cube := Cube()
	for i := range cube.TriangleCount() {
		if mesh.TriangleAt(i) != cube.TriangleAt(i) {
			t.Errorf("triangle %d = %v, want %v", i, mesh.TriangleAt(i), cube.TriangleAt(i))
		}
	}
}

func TestParseOBJSlashAndNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
f -3 -2 -1
`
	mesh, _, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("triangles = %d, want 2", mesh.TriangleCount())
	}
	for i, f := range mesh.Faces {
		if f.V != [3]int{0, 1, 2} {
			t.Errorf("face %d = %v, want [0 1 2]", i, f.V)
		}
	}
}

func TestParseOBJSkipsMalformed(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 one 0
v 1 2
f 1 2 3
f 1 2 x
f 1 2
f 1 2 3 1
`
	mesh, stats, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("vertices = %d, want 3", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("triangles = %d, want 1", mesh.TriangleCount())
	}
	if stats.SkippedVertex != 2 {
		t.Errorf("skipped vertices = %d, want 2", stats.SkippedVertex)
	}
	if stats.SkippedFace != 3 {
		t.Errorf("skipped faces = %d, want 3", stats.SkippedFace)
	}
}

func TestParseOBJIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"negative past start", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n"},
		{"forward reference", "v 0 0 0\nf 1 2 3\nv 1 0 0\nv 0 1 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseOBJ(strings.NewReader(tc.src))
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("got %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}

func TestParseOBJLongLines(t *testing.T) {
	long := "# " + strings.Repeat("x", 200*1024) + "\n"
	mesh, stats, err := ParseOBJ(strings.NewReader(long + cubeOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ with a 200 KiB comment: %v", err)
	}
	if mesh.TriangleCount() != 12 || stats.IgnoredRecords != 3 {
		t.Errorf("triangles %d ignored %d, want 12 and 3", mesh.TriangleCount(), stats.IgnoredRecords)
	}

	tooLong := "# " + strings.Repeat("x", MaxLineLength) + "\n"
	if _, _, err := ParseOBJ(strings.NewReader(tooLong + cubeOBJ)); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("got %v, want bufio.ErrTooLong", err)
	}
}

func TestParseOBJEmpty(t *testing.T) {
	_, _, err := ParseOBJ(strings.NewReader("# nothing here\nv 1 2 3\n"))
	if !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("got %v, want ErrEmptyMesh", err)
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	if err := os.WriteFile(path, []byte(cubeOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, _, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.Name != "cube.obj" {
		t.Errorf("name = %q, want cube.obj", mesh.Name)
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 1) {
		t.Errorf("bounds max = %v, want (1,1,1)", mesh.BoundsMax)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, _, err := LoadOBJ("/nonexistent/model.obj")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}
