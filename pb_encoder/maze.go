// Package pb encodes maze snapshots in the protobuf wire format.
//
// The message layout is
//
//	message Maze {
//	  uint32 width    = 1;
//	  uint32 height   = 2;
//	  sint64 seed     = 3;
//	  uint32 start    = 4; // row*width+col
//	  uint32 goal     = 5;
//	  repeated uint32 passages = 6 [packed = true]; // index pairs, lower index first
//	  repeated uint32 path     = 7 [packed = true];
//	}
package pb

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	widthField    protowire.Number = 1
	heightField   protowire.Number = 2
	seedField     protowire.Number = 3
	startField    protowire.Number = 4
	goalField     protowire.Number = 5
	passagesField protowire.Number = 6
	pathField     protowire.Number = 7
)

var ErrMalformed = errors.New("malformed maze snapshot")

// Snapshot is a self-contained description of a generated maze and one solved path.
type Snapshot struct {
	Width    int
	Height   int
	Seed     int64
	Start    maze.Cell
	Goal     maze.Cell
	Passages [][2]maze.Cell
	Path     []maze.Cell
}

// SnapshotOf captures every passage of m along with the given endpoints and path.
func SnapshotOf(m *maze.Maze, seed int64, start, goal maze.Cell, path []maze.Cell) Snapshot {
	s := Snapshot{
		Width:    m.Width(),
		Height:   m.Height(),
		Seed:     seed,
		Start:    start,
		Goal:     goal,
		Passages: make([][2]maze.Cell, 0, m.PassageCount()),
		Path:     append([]maze.Cell(nil), path...),
	}
	for _, c := range m.Cells() {
		for _, nb := range m.Passages(c) {
			if s.index(c) < s.index(nb) {
				s.Passages = append(s.Passages, [2]maze.Cell{c, nb})
			}
		}
	}
	return s
}

// Maze rebuilds the maze described by the snapshot.
func (s Snapshot) Maze() (*maze.Maze, error) {
	m, err := maze.New(s.Width, s.Height, maze.WithSeed(s.Seed))
	if err != nil {
		return nil, err
	}
	for _, p := range s.Passages {
		if err := m.Connect(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
	return m, nil
}

// Marshal encodes s.
func Marshal(s Snapshot) []byte {
	var b []byte
	b = appendUint(b, widthField, uint64(s.Width))
	b = appendUint(b, heightField, uint64(s.Height))
	b = protowire.AppendTag(b, seedField, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(s.Seed))
	b = appendUint(b, startField, uint64(s.index(s.Start)))
	b = appendUint(b, goalField, uint64(s.index(s.Goal)))

	cells := make([]maze.Cell, 0, 2*len(s.Passages))
	for _, p := range s.Passages {
		cells = append(cells, p[0], p[1])
	}
	b = s.appendPacked(b, passagesField, cells)
	b = s.appendPacked(b, pathField, s.Path)
	return b
}

// Unmarshal decodes a snapshot produced by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (Snapshot, error) {
	var (
		s                 Snapshot
		start, goal       uint64
		passages, pathIdx []uint64
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case typ == protowire.VarintType && num >= widthField && num <= goalField:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case widthField:
				s.Width = int(v)
			case heightField:
				s.Height = int(v)
			case seedField:
				s.Seed = protowire.DecodeZigZag(v)
			case startField:
				start = v
			case goalField:
				goal = v
			}
		case typ == protowire.BytesType && (num == passagesField || num == pathField):
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
			values, err := consumePacked(packed)
			if err != nil {
				return Snapshot{}, err
			}
			if num == passagesField {
				passages = append(passages, values...)
			} else {
				pathIdx = append(pathIdx, values...)
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if s.Width <= 0 || s.Height <= 0 || s.Width > maze.MaxCells/s.Height {
		return Snapshot{}, fmt.Errorf("%w: %w: %dx%d", ErrMalformed, maze.ErrInvalidDimension, s.Width, s.Height)
	}
	if len(passages)%2 != 0 {
		return Snapshot{}, fmt.Errorf("%w: odd passage index count", ErrMalformed)
	}

	var err error
	if s.Start, err = s.cell(start); err != nil {
		return Snapshot{}, err
	}
	if s.Goal, err = s.cell(goal); err != nil {
		return Snapshot{}, err
	}
	for i := 0; i < len(passages); i += 2 {
		a, err := s.cell(passages[i])
		if err != nil {
			return Snapshot{}, err
		}
		c, err := s.cell(passages[i+1])
		if err != nil {
			return Snapshot{}, err
		}
		s.Passages = append(s.Passages, [2]maze.Cell{a, c})
	}
	for _, v := range pathIdx {
		c, err := s.cell(v)
		if err != nil {
			return Snapshot{}, err
		}
		s.Path = append(s.Path, c)
	}
	return s, nil
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func (s Snapshot) appendPacked(b []byte, num protowire.Number, cells []maze.Cell) []byte {
	if len(cells) == 0 {
		return b
	}
	var packed []byte
	for _, c := range cells {
		packed = protowire.AppendVarint(packed, uint64(s.index(c)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func consumePacked(b []byte) ([]uint64, error) {
	var values []uint64
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		values = append(values, v)
		b = b[n:]
	}
	return values, nil
}

func (s Snapshot) index(c maze.Cell) int {
	return c.Row*s.Width + c.Col
}

func (s Snapshot) cell(idx uint64) (maze.Cell, error) {
	if idx >= uint64(s.Width)*uint64(s.Height) {
		return maze.Cell{}, fmt.Errorf("%w: %w: index %d", ErrMalformed, maze.ErrOutOfBounds, idx)
	}
	return maze.Cell{Row: int(idx) / s.Width, Col: int(idx) % s.Width}, nil
}
