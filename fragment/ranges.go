package fragment

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Range is a closed interval [Min, Max] of fragment sizes. Min <= Max always
// holds for ranges created by NewRange.
type Range struct {
	Min, Max uint64
}

// NewRange creates a range from two bounds given in either order.
func NewRange(a, b uint64) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Min: a, Max: b}
}

// Contains reports whether size is in [r.Min, r.Max].
func (r Range) Contains(size uint64) bool {
	return r.Min <= size && size <= r.Max
}

// Suffix returns "_{min}to{max}", the string appended to an output prefix to
// name the partition for r.
func (r Range) Suffix() string {
	return fmt.Sprintf("_%dto%d", r.Min, r.Max)
}

// String returns "[min,max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Ranges is an ordered list of ranges. The order is the routing priority: a
// record that falls in more than one range belongs to the earliest one unless
// multimembership is enabled. Ranges may overlap, and must never be sorted.
type Ranges []Range

// ParseRanges builds Ranges from a flat list of bounds read pairwise: bounds[0]
// and bounds[1] define the first range, bounds[2] and bounds[3] the second,
// and so on. Each pair may be given in either order. The list must have an even
// number of non-negative elements. Ranges may overlap, but two pairs must not
// describe the same range, since each range names its own output.
func ParseRanges(bounds []int64) (Ranges, error) {
	if len(bounds)%2 != 0 {
		return nil, errors.E(errors.Invalid,
			fmt.Sprintf("ranges: need an even number of bounds, but got %d: %v", len(bounds), bounds))
	}
	if len(bounds) == 0 {
		return nil, errors.E(errors.Invalid, "ranges: no range given")
	}
	ranges := make(Ranges, 0, len(bounds)/2)
	seen := make(map[Range]int, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		a, b := bounds[i], bounds[i+1]
		if a < 0 || b < 0 {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("ranges: negative bound in pair #%d (%d, %d)", i/2, a, b))
		}
		r := NewRange(uint64(a), uint64(b))
		if j, ok := seen[r]; ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("ranges: pair #%d (%d, %d) repeats range %v of pair #%d", i/2, a, b, r, j))
		}
		seen[r] = i / 2
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// ParseRangesFlag parses a comma-separated list of bounds, such as
// "20,120,250,300", with ParseRanges. Every element must be a number; an
// empty flag means no range.
func ParseRangesFlag(flag string) (Ranges, error) {
	if strings.TrimSpace(flag) == "" {
		return ParseRanges(nil)
	}
	var bounds []int64
	for i, val := range strings.Split(flag, ",") {
		val = strings.TrimSpace(val)
		if val == "" {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("ranges: empty bound #%d in %q", i, flag))
		}
		v, err := strconv.ParseInt(val, 0, 64)
		if err != nil {
			return nil, errors.E(errors.Invalid, err, fmt.Sprintf("ranges: parse %q", val))
		}
		bounds = append(bounds, v)
	}
	return ParseRanges(bounds)
}

// OutputPath returns the pathname of the partition for r:
// prefix + r.Suffix() + the extension of inputPath. For example,
// OutputPath("out/x", Range{20, 120}, "in.bam") is "out/x_20to120.bam".
func OutputPath(prefix string, r Range, inputPath string) string {
	return prefix + r.Suffix() + filepath.Ext(inputPath)
}
