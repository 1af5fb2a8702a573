// Package wavefront decodes the geometry subset of Wavefront OBJ files:
// positions, texture coordinates, normals, polygonal faces, and the object,
// group and material statements that split a file into meshes.
package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Group is one indexed triangle mesh. Positions, Normals and UVs hold one
// entry per vertex.
type Group struct {
	Name      string
	Material  string
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32

	hasNormals bool
}

type File struct {
	Groups []Group
}

func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an OBJ stream. Faces are fanned into triangles and groups
// without faces are dropped. A group without normals gets smooth normals.
func Decode(r io.Reader) (*File, error) {
	p := &parser{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		p.line++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := p.directive(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("wavefront: line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wavefront: %w", err)
	}
	p.flush()

	return &File{Groups: p.groups}, nil
}

type vertexKey struct {
	v, vt, vn int
}

type parser struct {
	line int

	positions [][3]float32
	uvs       [][2]float32
	normals   [][3]float32

	groups   []Group
	cur      *Group
	index    map[vertexKey]uint32
	name     string
	material string
}

func (p *parser) directive(f []string) error {
	switch f[0] {
	case "v":
		v, err := parseFloats(f[1:], 3, 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, [3]float32{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(f[1:], 1, 2)
		if err != nil {
			return err
		}
		p.uvs = append(p.uvs, [2]float32{v[0], v[1]})
	case "vn":
		v, err := parseFloats(f[1:], 3, 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, [3]float32{v[0], v[1], v[2]})
	case "f":
		return p.face(f[1:])
	case "o", "g":
		p.flush()
		p.name = strings.Join(f[1:], " ")
	case "usemtl":
		if p.cur != nil && len(p.cur.Indices) > 0 {
			p.flush()
		}
		p.material = strings.Join(f[1:], " ")
		if p.cur != nil {
			p.cur.Material = p.material
		}
	}
	return nil
}

// parseFloats parses at least min values and returns want of them, zero padded.
func parseFloats(fields []string, min, want int) ([]float32, error) {
	if len(fields) < min {
		return nil, fmt.Errorf("expected %d values, got %d", min, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want && i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

func (p *parser) face(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face needs 3 vertices, got %d", len(refs))
	}

	idx := make([]uint32, len(refs))
	for i, ref := range refs {
		key, err := p.parseRef(ref)
		if err != nil {
			return err
		}
		idx[i] = p.vertex(key)
	}

	for i := 1; i+1 < len(idx); i++ {
		p.cur.Indices = append(p.cur.Indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseRef parses v, v/vt, v//vn or v/vt/vn into zero-based indices; -1 marks absence.
func (p *parser) parseRef(ref string) (vertexKey, error) {
	parts := strings.Split(ref, "/")
	key := vertexKey{v: -1, vt: -1, vn: -1}

	var err error
	if key.v, err = resolve(parts[0], len(p.positions)); err != nil {
		return key, fmt.Errorf("vertex %q: %w", ref, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if key.vt, err = resolve(parts[1], len(p.uvs)); err != nil {
			return key, fmt.Errorf("texture coordinate %q: %w", ref, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if key.vn, err = resolve(parts[2], len(p.normals)); err != nil {
			return key, fmt.Errorf("normal %q: %w", ref, err)
		}
	}
	return key, nil
}

// resolve turns a one-based or negative relative OBJ index into a zero-based one.
func resolve(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	i := n - 1
	if n < 0 {
		i = count + n
	}
	if n == 0 || i < 0 || i >= count {
		return 0, fmt.Errorf("index %d out of range (%d defined)", n, count)
	}
	return i, nil
}

func (p *parser) vertex(key vertexKey) uint32 {
	if p.cur == nil {
		p.cur = &Group{Name: p.name, Material: p.material}
		p.index = make(map[vertexKey]uint32)
	}
	if i, ok := p.index[key]; ok {
		return i
	}

	g := p.cur
	i := uint32(len(g.Positions) / 3)
	pos := p.positions[key.v]
	g.Positions = append(g.Positions, pos[0], pos[1], pos[2])

	var uv [2]float32
	if key.vt >= 0 {
		uv = p.uvs[key.vt]
	}
	g.UVs = append(g.UVs, uv[0], uv[1])

	var n [3]float32
	if key.vn >= 0 {
		n = p.normals[key.vn]
		g.hasNormals = true
	}
	g.Normals = append(g.Normals, n[0], n[1], n[2])

	p.index[key] = i
	return i
}

func (p *parser) flush() {
	if p.cur != nil && len(p.cur.Indices) > 0 {
		if !p.cur.hasNormals {
			smoothNormals(p.cur)
		}
		p.groups = append(p.groups, *p.cur)
	}
	p.cur = nil
	p.index = nil
}

// smoothNormals averages area-weighted face normals at every vertex.
func smoothNormals(g *Group) {
	acc := make([]mgl32.Vec3, len(g.Positions)/3)
	at := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]}
	}
	for t := 0; t+2 < len(g.Indices); t += 3 {
		a, b, c := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
		n := at(b).Sub(at(a)).Cross(at(c).Sub(at(a)))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i, n := range acc {
		if n.Len() > 0 {
			n = n.Normalize()
		}
		g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2] = n[0], n[1], n[2]
	}
}
