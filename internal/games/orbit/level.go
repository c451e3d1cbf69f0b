package orbit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/orbit-breaker/internal/core"
)

// BrickSpec is one brick placement in a level description.
type BrickSpec struct {
	Category Category `yaml:"category"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
}

// Level is a parsed level: where each brick starts and its category.
type Level struct {
	Name   string      `yaml:"name"`
	Bricks []BrickSpec `yaml:"bricks"`
}

// ErrEmptyLevel is returned for level files that place no bricks.
var ErrEmptyLevel = errors.New("orbit: level has no bricks")

// LoadLevel reads a level file. Files ending in .yaml or .yml use the YAML
// form; anything else is the text form.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path) //#nosec G304 -- level path comes from the player
	if err != nil {
		return nil, fmt.Errorf("orbit: open level: %w", err)
	}
	defer f.Close()

	var lvl *Level
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("orbit: read level: %w", err)
		}
		lvl, err = ParseLevelYAML(data)
		if err != nil {
			return nil, err
		}
	default:
		lvl, err = ParseLevel(f)
		if err != nil {
			return nil, err
		}
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// levelExts lists the file extensions FindLevels accepts.
var levelExts = map[string]bool{".lvl": true, ".txt": true, ".yaml": true, ".yml": true}

// FindLevels lists the level files directly inside dir, sorted by name.
// A missing directory yields no levels and no error.
func FindLevels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("orbit: list levels: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !levelExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// UserLevelDir returns ~/.orbit/levels, or "" when the home directory is unknown.
func UserLevelDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbit", "levels")
}

// ParseLevel reads the text form: a record count, then one "category,x,y"
// line per brick. Blank lines and lines starting with # are skipped.
func ParseLevel(r io.Reader) (*Level, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	want := -1
	lvl := &Level{}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if want < 0 {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("orbit: level line %d: bad record count %q", lineNo, line)
			}
			want = n
			lvl.Bricks = make([]BrickSpec, 0, n)
			continue
		}

		if len(lvl.Bricks) == want {
			return nil, fmt.Errorf("orbit: level line %d: more than %d records", lineNo, want)
		}
		spec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("orbit: level line %d: %w", lineNo, err)
		}
		lvl.Bricks = append(lvl.Bricks, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("orbit: read level: %w", err)
	}

	if want < 0 {
		return nil, ErrEmptyLevel
	}
	if len(lvl.Bricks) != want {
		return nil, fmt.Errorf("orbit: level declares %d records, found %d", want, len(lvl.Bricks))
	}
	if want == 0 {
		return nil, ErrEmptyLevel
	}
	return lvl, nil
}

// parseRecord parses "category,x,y".
func parseRecord(line string) (BrickSpec, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return BrickSpec{}, fmt.Errorf("expected category,x,y, got %q", line)
	}
	cat, err := ParseCategory(fields[0])
	if err != nil {
		return BrickSpec{}, err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || !finite(x) {
		return BrickSpec{}, fmt.Errorf("bad x %q", fields[1])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil || !finite(y) {
		return BrickSpec{}, fmt.Errorf("bad y %q", fields[2])
	}
	return BrickSpec{Category: cat, X: x, Y: y}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseLevelYAML reads the YAML form: {name, bricks: [{category, x, y}]}.
func ParseLevelYAML(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("orbit: parse level: %w", err)
	}
	if len(lvl.Bricks) == 0 {
		return nil, ErrEmptyLevel
	}
	for i, b := range lvl.Bricks {
		if !finite(b.X) || !finite(b.Y) {
			return nil, fmt.Errorf("orbit: level brick %d: position (%v, %v) is not finite", i, b.X, b.Y)
		}
	}
	return &lvl, nil
}

// Fit reports an error when a brick centre lies outside a playfield of the
// given size, where the ball could never reach it.
func (l *Level) Fit(field core.Vec2) error {
	for i, b := range l.Bricks {
		if !finite(b.X) || !finite(b.Y) || b.X < 0 || b.Y < 0 || b.X > field.X || b.Y > field.Y {
			return fmt.Errorf("orbit: level brick %d at (%v, %v) is outside the %vx%v playfield", i, b.X, b.Y, field.X, field.Y)
		}
	}
	return nil
}

// EncodeLevel writes a level in the text form ParseLevel reads.
func EncodeLevel(w io.Writer, lvl *Level) error {
	bw := bufio.NewWriter(w)
	if lvl.Name != "" {
		fmt.Fprintf(bw, "# %s\n", lvl.Name)
	}
	fmt.Fprintf(bw, "%d\n", len(lvl.Bricks))
	for _, b := range lvl.Bricks {
		fmt.Fprintf(bw, "%d,%s,%s\n", int(b.Category),
			strconv.FormatFloat(b.X, 'f', -1, 64),
			strconv.FormatFloat(b.Y, 'f', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("orbit: write level: %w", err)
	}
	return nil
}

// Build creates live bricks for every placement, all orbiting pivot.
func (l *Level) Build(pivot core.Vec2, halfW, halfH float64) []*Brick {
	bricks := make([]*Brick, 0, len(l.Bricks))
	for _, s := range l.Bricks {
		bricks = append(bricks, NewBrick(pivot, core.V(s.X, s.Y), halfW, halfH, s.Category))
	}
	return bricks
}
