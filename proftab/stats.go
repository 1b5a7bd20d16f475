package proftab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/pprof/profile"
)

// ErrNoSampleType indicates a profile without any sample value types.
var ErrNoSampleType = errors.New("profile has no sample types")

// FuncKey identifies a function observed in a profiling run by its source
// location. File holds only the base name; directory prefixes are stripped
// during loading.
type FuncKey struct {
	File     string
	Line     int
	Function string
}

// FuncStats holds the raw counters recorded for one function in a single
// profiling run.
//
// PrimCalls counts distinct samples the function appeared in, excluding
// recursive re-entries within a sample. TotalCalls counts every stack
// occurrence, recursion included, so PrimCalls <= TotalCalls always holds.
// Times are in seconds.
type FuncStats struct {
	PrimCalls  int64
	TotalCalls int64
	SelfTime   float64
	CumTime    float64
}

// Stats maps every function observed in one profiling run to its counters.
type Stats map[FuncKey]FuncStats

// LoadFile reads a binary pprof dump from path and returns its per-function
// statistics. The parser transparently handles gzip-compressed dumps.
func LoadFile(path string) (Stats, error) {
	f, err := os.Open(path) //nolint:gosec // Profile path is a caller-provided input file.
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file.

	p, err := profile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return FromProfile(p)
}

// FromProfile converts a parsed profile into per-function statistics.
//
// For each sample, the time value accumulates into SelfTime at the leaf
// frame and into CumTime once per distinct function on the stack. The count
// value accumulates into TotalCalls for every stack occurrence and into
// PrimCalls once per distinct function, which keeps PrimCalls <= TotalCalls
// by construction. Inlined frames count as regular frames.
func FromProfile(p *profile.Profile) (Stats, error) {
	timeIdx, scale, err := timeValueIndex(p)
	if err != nil {
		return nil, err
	}

	countIdx := countValueIndex(p)

	st := make(Stats)

	for _, s := range p.Sample {
		t := float64(s.Value[timeIdx]) * scale

		var n int64 = 1
		if countIdx >= 0 {
			n = s.Value[countIdx]
		}

		seen := make(map[FuncKey]bool)

		for i, loc := range s.Location {
			for j, line := range loc.Line {
				if line.Function == nil {
					continue
				}

				k := FuncKey{
					File:     filepath.Base(line.Function.Filename),
					Line:     int(line.Line),
					Function: line.Function.Name,
				}

				fs := st[k]
				fs.TotalCalls += n

				if !seen[k] {
					seen[k] = true
					fs.PrimCalls += n
					fs.CumTime += t
				}

				// Location[0].Line[0] is the innermost frame.
				if i == 0 && j == 0 {
					fs.SelfTime += t
				}

				st[k] = fs
			}
		}
	}

	return st, nil
}

// timeValueIndex selects the sample value used as the time metric: the first
// sample type named "cpu" if present, otherwise the last sample type. The
// returned scale converts raw values to seconds.
func timeValueIndex(p *profile.Profile) (int, float64, error) {
	if len(p.SampleType) == 0 {
		return 0, 0, ErrNoSampleType
	}

	idx := len(p.SampleType) - 1

	for i, vt := range p.SampleType {
		if vt.Type == "cpu" {
			idx = i

			break
		}
	}

	return idx, unitScale(p.SampleType[idx].Unit), nil
}

// countValueIndex returns the index of the "samples"/count value, or -1 if
// the profile carries none (each sample then counts as one observation).
func countValueIndex(p *profile.Profile) int {
	for i, vt := range p.SampleType {
		if vt.Type == "samples" || vt.Unit == "count" {
			return i
		}
	}

	return -1
}

func unitScale(unit string) float64 {
	switch unit {
	case "nanoseconds":
		return 1e-9
	case "microseconds":
		return 1e-6
	case "milliseconds":
		return 1e-3
	}

	return 1
}
