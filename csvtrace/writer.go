package csvtrace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/swarmsim/auction"
)

// Type is the CSV "type" column's numeric entity/row kind.
type Type int

const (
	ElevatorType Type = 0
	BinType      Type = 1
	RobotType    Type = 2
	PathType     Type = 3
)

// header is the fixed column order every row conforms to.
var header = []string{"stage", "type", "id", "x", "y", "z", "t"}

// Entity is a single static snapshot row: an elevator, a resting bin, or a
// resting bot.
type Entity struct {
	Type Type
	ID   int
	Node *auction.Node
}

// Writer emits swarmsim's bin-routing CSV trace. It owns the underlying
// io.Writer directly (in addition to an encoding/csv.Writer) so it can
// interleave banner comment lines between rows.
type Writer struct {
	raw io.Writer
	csv *csv.Writer
}

// New wraps w, writes the CSV header, and returns a ready Writer.
func New(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("csvtrace: write header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csvtrace: flush header: %w", err)
	}
	return &Writer{raw: w, csv: cw}, nil
}

// WriteBanner emits a comment line (not a data row) ahead of a stage's
// rows, e.g. to record the run id BinRouter.Solve tagged itself with.
func (w *Writer) WriteBanner(note string) error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w.raw, "# "+note+"\r\n")
	return err
}

// WriteEntities writes one t=0 row per entity at stage.
func (w *Writer) WriteEntities(stage int, entities []Entity) error {
	for _, e := range entities {
		pos := e.Node.Position
		if err := w.writeRow(stage, e.Type, e.ID, pos.X, pos.Y, pos.Z, 0); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}

// WritePath writes one row per visit in path, attributed to agentID (used
// to find that agent's own bid and compute its rank), offset into the
// output by the caller via id. under selects the sign of the synthetic "t"
// column: robot-phase paths pass true, bin-phase paths pass false.
// Elevator visits (Node.CustomData) are split into two rows, one at the
// floor before the visit and one at the floor after, per the external CSV
// contract.
func (w *Writer) WritePath(stage int, id int, agentID string, path auction.Path, under bool) error {
	for i, v := range path {
		rank := rankOf(v.Node, agentID)
		t := 0.25 + float64(rank)
		if under {
			t = -t
		}

		if !v.Node.CustomData {
			if err := w.writeRow(stage, PathType, id, v.Node.Position.X, v.Node.Position.Y, v.Node.Position.Z, t); err != nil {
				return err
			}
			continue
		}

		prevZ, nextZ := v.Node.Position.Z, v.Node.Position.Z
		if i > 0 {
			prevZ = path[i-1].Node.Position.Z
		}
		if i < len(path)-1 {
			nextZ = path[i+1].Node.Position.Z
		}
		if err := w.writeRow(stage, PathType, id, v.Node.Position.X, v.Node.Position.Y, prevZ, t); err != nil {
			return err
		}
		if err := w.writeRow(stage, PathType, id, v.Node.Position.X, v.Node.Position.Y, nextZ, t); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}

// rankOf returns the zero-based distance from agentID's own bid at n to
// the end of n's bid book — the lowest-priced bid has the highest rank.
func rankOf(n *auction.Node, agentID string) int {
	bids := n.Auction.Bids()
	for i, b := range bids {
		if b.Bidder == agentID {
			return len(bids) - 1 - i
		}
	}
	return 0
}

func (w *Writer) writeRow(stage int, typ Type, id int, x, y, z, t float64) error {
	return w.csv.Write([]string{
		strconv.Itoa(stage),
		strconv.Itoa(int(typ)),
		strconv.Itoa(id),
		formatFloat(x),
		formatFloat(y),
		formatFloat(z),
		formatFloat(t),
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Close flushes any buffered rows. It does not close the underlying
// io.Writer — the caller owns that lifecycle (typically an *os.File).
func (w *Writer) Close() error {
	w.csv.Flush()
	return w.csv.Error()
}
