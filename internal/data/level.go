package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel wraps every level format error.
var ErrInvalidLevel = errors.New("invalid level")

// Cell is one character of a level map row.
type Cell byte

const (
	CellEmpty       Cell = ' '
	CellBreakable   Cell = 'B'
	CellUnbreakable Cell = 'U'
)

// Position is an entity position in tiles. Y is height.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// EntitySpec describes one entity of a level. Pos defaults to the origin;
// Speed is only read for the player.
type EntitySpec struct {
	Type  string    `yaml:"type"`
	Pos   *Position `yaml:"pos"`
	Speed *float64  `yaml:"speed"`
}

// Position returns the given position, or the origin if none was set.
func (s EntitySpec) Position() Position {
	if s.Pos == nil {
		return Position{}
	}
	return *s.Pos
}

// LevelFile is a parsed level. Levels are usually JSON; since JSON is a
// subset of YAML both formats load through the same decoder.
type LevelFile struct {
	Name             string       `yaml:"-"`
	Width            int          `yaml:"width"`
	Height           int          `yaml:"height"`
	Map              []string     `yaml:"map"`
	InfinityPlatform bool         `yaml:"infinityPlatform"`
	Entities         []EntitySpec `yaml:"entities"`
}

// LoadLevel reads and validates the level at path.
func LoadLevel(path string) (*LevelFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	return ParseLevel(path, raw)
}

// ParseLevel decodes and validates raw level data. name only labels errors.
func ParseLevel(name string, raw []byte) (*LevelFile, error) {
	var f LevelFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidLevel, err)
	}
	f.Name = name
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *LevelFile) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%s: %w: size %dx%d", f.Name, ErrInvalidLevel, f.Width, f.Height)
	}
	if len(f.Map) != f.Height {
		return fmt.Errorf("%s: %w: map size (%d) != height (%d)", f.Name, ErrInvalidLevel, len(f.Map), f.Height)
	}
	for y, row := range f.Map {
		if len(row) != f.Width {
			return fmt.Errorf("%s: %w: row %d size (%d) != width (%d)", f.Name, ErrInvalidLevel, y, len(row), f.Width)
		}
		for x := 0; x < len(row); x++ {
			switch Cell(row[x]) {
			case CellEmpty, CellBreakable, CellUnbreakable:
			default:
				return fmt.Errorf("%s: %w: expected ' ', 'B' or 'U' at (%d, %d), found %q",
					f.Name, ErrInvalidLevel, x, y, row[x])
			}
		}
	}
	for i, e := range f.Entities {
		if e.Type == "" {
			return fmt.Errorf("%s: %w: entity %d has no type", f.Name, ErrInvalidLevel, i)
		}
	}
	return nil
}

// CellAt returns the cell at column x of row y. The file is validated, so
// in-range coordinates always hold a known cell.
func (f *LevelFile) CellAt(x, y int) Cell {
	return Cell(f.Map[y][x])
}
