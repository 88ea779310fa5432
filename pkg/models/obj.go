package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/painter/pkg/math3d"
)

// MaxLineLength is the longest OBJ line ParseOBJ accepts. A longer line
// fails the parse with bufio.ErrTooLong.
const MaxLineLength = 1 << 20

// ParseStats reports what an OBJ parse skipped.
type ParseStats struct {
	Lines          int // Total lines read
	SkippedVertex  int // Malformed "v" records
	SkippedFace    int // Malformed or non-triangle "f" records
	IgnoredRecords int // Lines with any other tag (vn, vt, usemtl, comments...)
}

// Skipped returns the number of malformed records.
func (s ParseStats) Skipped() int {
	return s.SkippedVertex + s.SkippedFace
}

// LoadOBJ loads a Wavefront OBJ file containing triangles.
func LoadOBJ(path string) (*Mesh, ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, stats, err := ParseOBJ(f)
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, stats, nil
}

// ParseOBJ reads OBJ records from r.
//
// "v x y z" appends a vertex, "f a b c" appends a triangle using 1-based
// (or negative, relative) vertex indices; "a/b/c" tokens use only the vertex
// part. Malformed records are skipped and counted. A face that references a
// vertex that does not exist stops the parse with ErrIndexOutOfRange.
func ParseOBJ(r io.Reader) (*Mesh, ParseStats, error) {
	mesh := NewMesh("obj")
	var stats ParseStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for scanner.Scan() {
		stats.Lines++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				stats.SkippedVertex++
				continue
			}
			mesh.AddVertex(v)

		case "f":
			if len(fields) != 4 {
				stats.SkippedFace++
				continue
			}
			var idx [3]int
			ok := true
			for i, tok := range fields[1:] {
				n, err := strconv.Atoi(strings.SplitN(tok, "/", 2)[0])
				if err != nil {
					ok = false
					break
				}
				idx[i] = resolveIndex(n, len(mesh.Vertices))
			}
			if !ok {
				stats.SkippedFace++
				continue
			}
			if err := mesh.AddFace(idx[0], idx[1], idx[2]); err != nil {
				return nil, stats, fmt.Errorf("line %d: %w", stats.Lines, err)
			}

		default:
			stats.IgnoredRecords++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read obj: %w", err)
	}

	if len(mesh.Faces) == 0 {
		return nil, stats, ErrEmptyMesh
	}

	mesh.CalculateBounds()
	return mesh, stats, nil
}

// parseVertex parses the coordinates following a "v" tag. An optional
// fourth (w) coordinate is accepted and ignored.
func parseVertex(fields []string) (math3d.Vec3, bool) {
	if len(fields) < 3 || len(fields) > 4 {
		return math3d.Vec3{}, false
	}
	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, false
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), true
}

// resolveIndex converts an OBJ index to 0-based. Zero and anything beyond the
// list map to an invalid index for AddFace to reject.
func resolveIndex(n, count int) int {
	if n < 0 {
		return count + n
	}
	return n - 1
}
