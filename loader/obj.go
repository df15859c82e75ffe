package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lmarchetti/raytracer/log"
	"github.com/lmarchetti/raytracer/types"
)

var objLogger = log.New("loader")

// Mesh is the parsed result of an OBJ file: flat position/index arrays plus
// one precomputed face normal per triangle, ready to hand to
// scene.NewTriangleMesh.
type Mesh struct {
	Positions []types.Vector3
	Indices   []int
	Normals   []types.Vector3
}

// ParseOBJ reads a minimal Wavefront OBJ stream: "#" comments, "v x y z"
// vertices and "f i0 i1 i2" triangular faces (1-based indices). Triangles
// whose three vertices are collinear (degenerate normal) are dropped with
// a warning rather than propagating NaNs into the BVH.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var positions []types.Vector3
	var faces [][3]int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "#" {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVector3(fields)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d: %w: %w", line, ErrMalformedOBJ, err)
			}
			positions = append(positions, v)
		case "f":
			f, err := parseFace(fields)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d: %w: %w", line, ErrMalformedOBJ, err)
			}
			faces = append(faces, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	mesh := &Mesh{Positions: positions}
	for _, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(positions) {
				return nil, fmt.Errorf("loader: %w: face index %d out of range (%d vertices)", ErrMalformedOBJ, idx, len(positions))
			}
		}

		v0, v1, v2 := positions[f[0]], positions[f[1]], positions[f[2]]
		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		if normal == (types.Vector3{}) {
			objLogger.Warningf("loader: dropping degenerate triangle (%d,%d,%d)", f[0], f[1], f[2])
			continue
		}

		mesh.Indices = append(mesh.Indices, f[0], f[1], f[2])
		mesh.Normals = append(mesh.Normals, normal)
	}

	return mesh, nil
}

func parseVector3(fields []string) (types.Vector3, error) {
	if len(fields) != 4 {
		return types.Vector3{}, fmt.Errorf("unsupported syntax for 'v'; expected 3 arguments; got %d", len(fields)-1)
	}
	var v types.Vector3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return types.Vector3{}, fmt.Errorf("could not parse 'v' component %q: %w", fields[i+1], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseFace(fields []string) ([3]int, error) {
	if len(fields) != 4 {
		return [3]int{}, fmt.Errorf("unsupported syntax for 'f'; expected 3 arguments; got %d", len(fields)-1)
	}
	var f [3]int
	for i := 0; i < 3; i++ {
		idx, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return [3]int{}, fmt.Errorf("could not parse 'f' index %q: %w", fields[i+1], err)
		}
		f[i] = idx - 1 // OBJ indices are 1-based
	}
	return f, nil
}
