// internal/codes/codes.go
//
// Loads code lists for the oracle.
//
// Responsibilities:
//   - Parse the plain-text list format (header line, then one code per line).
//   - Parse the YAML list format.
//   - Validate every code against the declared peg and color counts.
//   - Supply the embedded practice list.
//
// Text format:
//
//	# comments and blank lines are ignored
//	6 4          <- colors pegs
//	0 1 2 3      <- one code per line
//	5 5 4 4
//
// YAML format:
//
//	colors: 6
//	pegs: 4
//	codes:
//	  - [0, 1, 2, 3]
//	  - [5, 5, 4, 4]
//
// Constraints:
//   • Every code has exactly pegs values, each in [0, colors).
//   • A list must hold at least one code.
//   • Errors are returned to the caller; nothing here exits the process.

package codes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/mastermind/assets"
)

var (
	ErrMalformed   = errors.New("codes: malformed list")
	ErrCodeLength  = errors.New("codes: wrong number of pegs")
	ErrColorRange  = errors.New("codes: color out of range")
	ErrNoCodes     = errors.New("codes: list did not contain any codes")
	ErrSetNotFound = errors.New("codes: code set not found")
)

// List is a validated, ordered set of codes sharing one board shape.
type List struct {
	Colors int     `yaml:"colors"`
	Pegs   int     `yaml:"pegs"`
	Codes  [][]int `yaml:"codes"`
}

// Validate checks the board shape and every code against it.
func (l *List) Validate() error {
	if l.Colors < 1 {
		return fmt.Errorf("%w: colors must be at least 1, got %d", ErrMalformed, l.Colors)
	}
	if l.Pegs < 1 {
		return fmt.Errorf("%w: pegs must be at least 1, got %d", ErrMalformed, l.Pegs)
	}
	if len(l.Codes) == 0 {
		return ErrNoCodes
	}
	for i, c := range l.Codes {
		if err := l.checkCode(c); err != nil {
			return fmt.Errorf("code %d: %w", i+1, err)
		}
	}
	return nil
}

func (l *List) checkCode(c []int) error {
	if len(c) != l.Pegs {
		return fmt.Errorf("%w: got %d, want %d", ErrCodeLength, len(c), l.Pegs)
	}
	for _, v := range c {
		if v < 0 || v >= l.Colors {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrColorRange, v, l.Colors)
		}
	}
	return nil
}

// Parse reads the plain-text list format from r.
func Parse(r io.Reader) (*List, error) {
	var l *List
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		nums, err := parseInts(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		// First meaningful line is the header.
		if l == nil {
			if len(nums) != 2 {
				return nil, fmt.Errorf("line %d: %w: header needs \"colors pegs\", got %q", lineNo, ErrMalformed, s)
			}
			l = &List{Colors: nums[0], Pegs: nums[1]}
			if l.Colors < 1 || l.Pegs < 1 {
				return nil, fmt.Errorf("line %d: %w: colors and pegs must be at least 1", lineNo, ErrMalformed)
			}
			continue
		}
		if err := l.checkCode(nums); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		l.Codes = append(l.Codes, nums)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if len(l.Codes) == 0 {
		return nil, ErrNoCodes
	}
	return l, nil
}

// ParseYAML decodes and validates the YAML list format.
func ParseYAML(b []byte) (*List, error) {
	var l List
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads a list from disk. Files ending in .yaml or .yml are
// decoded as YAML; anything else uses the text format.
func LoadFile(path string) (*List, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		l, err := ParseYAML(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		l, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil
	}
}

// Practice returns the embedded practice list.
func Practice() (*List, error) {
	f, err := assets.FS.Open(assets.PracticeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// parseInts splits a line on whitespace and converts every field.
func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: expected an integer, got %q", ErrMalformed, f)
		}
		out = append(out, n)
	}
	return out, nil
}
