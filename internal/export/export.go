// Package export writes trajectories as CSV, JSON or SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/reactorsim/internal/reactor"
)

type Data struct {
	Params reactor.Params `json:"params"`
	Points int            `json:"points"`
	Dt     float64        `json:"dt"`
	Times  []float64      `json:"times"`
	C1     []float64      `json:"c1"`
	C2     []float64      `json:"c2"`
	C3     []float64      `json:"c3"`
	Final  reactor.Sample `json:"final"`
}

func NewData(p reactor.Params, tr *reactor.Trajectory) Data {
	return Data{
		Params: p,
		Points: tr.Len(),
		Dt:     p.Step(tr.Len()),
		Times:  tr.Times,
		C1:     tr.C1,
		C2:     tr.C2,
		C3:     tr.C3,
		Final:  tr.Final(),
	}
}

func WriteJSON(w io.Writer, p reactor.Params, tr *reactor.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewData(p, tr))
}

// WriteCSV writes one row per sample under a time,c1,c2,c3 header.
func WriteCSV(w io.Writer, tr *reactor.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "c1", "c2", "c3"}); err != nil {
		return err
	}
	for i := 0; i < tr.Len(); i++ {
		s := tr.At(i)
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.C1, 'f', 6, 64),
			strconv.FormatFloat(s.C2, 'f', 6, 64),
			strconv.FormatFloat(s.C3, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
