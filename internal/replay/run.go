package replay

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Faultbox/locomotion/internal/locomotion"
	"github.com/Faultbox/locomotion/pkg/math"
)

// Driver is advanced once per frame and then snapshotted. Both
// *locomotion.Controller and *character.Character satisfy it.
type Driver interface {
	Update(dt float32, keys locomotion.Keys)
	Snapshot() locomotion.Snapshot
}

// Frame is one replayed frame.
type Frame struct {
	Index int
	DT    float32
	Keys  locomotion.Keys
	locomotion.Snapshot
}

// Run validates the script, feeds it to d and returns its snapshot after
// every frame. An invalid script drives no frames.
func Run(s *Script, d Driver) ([]Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, s.Len())
	for _, st := range s.Frames {
		keys, err := ParseKeys(st.Keys)
		if err != nil {
			return nil, err
		}
		for i := 0; i < st.count(); i++ {
			d.Update(st.DT, keys)
			frames = append(frames, Frame{
				Index:    len(frames),
				DT:       st.DT,
				Keys:     keys,
				Snapshot: d.Snapshot(),
			})
		}
	}
	return frames, nil
}

// Transitions returns the frames on which the state differs from the frame
// before. The first frame is compared against Idle.
func Transitions(frames []Frame) []Frame {
	var out []Frame
	prev := locomotion.Idle
	for _, f := range frames {
		if f.State != prev {
			out = append(out, f)
			prev = f.State
		}
	}
	return out
}

// WriteTrace prints frames as an aligned table.
func WriteTrace(w io.Writer, frames []Frame) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "frame\tkeys\tstate\tclip\tx\tz\tfacing\tturn\tjump")
	for _, f := range frames {
		turn := "-"
		if f.Turning {
			turn = fmt.Sprintf("%.2f", f.TurnProgress)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.3f\t%.3f\t%.1f\t%s\t%.2f\n",
			f.Index,
			keyString(f.Keys),
			f.State,
			f.Clip,
			f.Pose.Position.X,
			f.Pose.Position.Z,
			math.Degrees(f.Pose.Facing),
			turn,
			f.JumpTimer,
		)
	}
	return tw.Flush()
}

func keyString(k locomotion.Keys) string {
	b := []byte("-----")
	if k.Forward {
		b[0] = 'W'
	}
	if k.TurnLeft {
		b[1] = 'A'
	}
	if k.TurnRight {
		b[2] = 'D'
	}
	if k.Jump {
		b[3] = 'J'
	}
	if k.Dance {
		b[4] = '1'
	}
	return string(b)
}
