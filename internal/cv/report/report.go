// Package report formats the wall-clock cost of an emulation run.
//
// A run has three timed phases - initialization (allocate + fill), the
// parallel recoloring itself, and cleanup (artifact write) - plus a total
// measured separately, which is slightly more accurate than summing the
// phases.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Timings carries the measured phase durations of one run.
type Timings struct {
	Init    time.Duration
	Recolor time.Duration
	Cleanup time.Duration
	All     time.Duration
}

// Format selects how timings are rendered.
type Format int

const (
	// None prints nothing; errors still reach stderr.
	None Format = iota

	// Human is readable text for a single interactive run.
	Human

	// TDL is one tab-delimited line (init, recolor, cleanup, all; ms) for
	// batch runs feeding a spreadsheet or awk.
	TDL

	// JSON is a single JSON object with millisecond fields.
	JSON
)

// String returns the format's configuration-surface name.
func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Human:
		return "human"
	case TDL:
		return "tdl"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a configuration name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "none":
		return None, nil
	case "human":
		return Human, nil
	case "tdl":
		return TDL, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("report: unknown format %q (want none, human, tdl or json)", name)
	}
}

// jsonTimings is the wire shape of the json format.
type jsonTimings struct {
	InitMS    int64 `json:"init_ms"`
	RecolorMS int64 `json:"recolor_ms"`
	CleanupMS int64 `json:"cleanup_ms"`
	AllMS     int64 `json:"all_ms"`
}

// Render writes t to w in the given format.
func Render(w io.Writer, f Format, t Timings) error {
	ms := func(d time.Duration) int64 { return d.Milliseconds() }
	switch f {
	case None:
		return nil
	case Human:
		_, err := fmt.Fprintf(w,
			"Initialization took %d ms.\nCole-Vishkin took %d ms.\nCleanup took %d ms.\n<All> took %d ms.\n",
			ms(t.Init), ms(t.Recolor), ms(t.Cleanup), ms(t.All))
		return err
	case TDL:
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\n",
			ms(t.Init), ms(t.Recolor), ms(t.Cleanup), ms(t.All))
		return err
	case JSON:
		raw, err := sonnet.Marshal(jsonTimings{
			InitMS:    ms(t.Init),
			RecolorMS: ms(t.Recolor),
			CleanupMS: ms(t.Cleanup),
			AllMS:     ms(t.All),
		})
		if err != nil {
			return fmt.Errorf("report: encoding timings: %w", err)
		}
		raw = append(raw, '\n')
		_, err = w.Write(raw)
		return err
	default:
		return fmt.Errorf("report: unknown format %v", f)
	}
}
