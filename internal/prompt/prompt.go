// Package prompt collects reactor inputs from a line-oriented terminal,
// re-asking until each value is acceptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/recordstore"
)

// ErrAborted is returned when input ends before a value is read.
var ErrAborted = errors.New("prompt: input ended")

// Collector reads whitespace-separated answers. It owns the only buffer
// over its input; hand Input to anything that reads after it.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(r), out: w}
}

// Input returns the buffered reader positioned after the last answer read.
func (c *Collector) Input() io.Reader {
	return c.in
}

func (c *Collector) word() (string, error) {
	var b strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", ErrAborted
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = c.in.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// Float asks for a number until a finite one parses.
func (c *Collector) Float(name string) (float64, error) {
	for {
		fmt.Fprintf(c.out, "Enter %s:\n", name)
		w, err := c.word()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(w, 64)
		switch {
		case err != nil:
			fmt.Fprintf(c.out, "Sorry, %q is not a number\n", w)
		case math.IsNaN(v) || math.IsInf(v, 0):
			fmt.Fprintf(c.out, "Sorry, %q is not a finite number\n", w)
		default:
			return v, nil
		}
	}
}

// Positive asks for a number until it is greater than zero.
func (c *Collector) Positive(name, label string) (float64, error) {
	for {
		v, err := c.Float(name)
		if err != nil {
			return 0, err
		}
		if v > 0 {
			return v, nil
		}
		fmt.Fprintf(c.out, "Sorry, %s has to be greater than zero\n", label)
	}
}

// Collect reads a full parameter set: concentrations, horizon, volumes,
// then flows. Volumes and horizon are re-asked until positive.
func (c *Collector) Collect() (reactor.Params, error) {
	var p reactor.Params

	floats := []struct {
		name string
		dst  *float64
	}{
		{"C01", &p.Feed.C01},
		{"C03", &p.Feed.C03},
		{"C10", &p.Initial.C1},
		{"C20", &p.Initial.C2},
		{"C30", &p.Initial.C3},
	}
	for _, f := range floats {
		v, err := c.Float(f.name)
		if err != nil {
			return reactor.Params{}, err
		}
		*f.dst = v
	}

	positives := []struct {
		name, label string
		dst         *float64
	}{
		{"the final time tf", "time", &p.Horizon.TFinal},
		{"V1", "V1", &p.Geometry.V1},
		{"V2", "V2", &p.Geometry.V2},
		{"V3", "V3", &p.Geometry.V3},
	}
	for _, f := range positives {
		v, err := c.Positive(f.name, f.label)
		if err != nil {
			return reactor.Params{}, err
		}
		*f.dst = v
	}

	flows := []struct {
		name string
		dst  *float64
	}{
		{"Q01", &p.Flows.Q01},
		{"Q03", &p.Flows.Q03},
		{"Q12", &p.Flows.Q12},
		{"Q23", &p.Flows.Q23},
		{"Q31", &p.Flows.Q31},
		{"Q33", &p.Flows.Q33},
	}
	for _, f := range flows {
		v, err := c.Float(f.name)
		if err != nil {
			return reactor.Params{}, err
		}
		*f.dst = v
	}

	return p, nil
}

// CollectValid repeats Collect until the flows satisfy every balance
// equation. Each rejected attempt is reported to onReject when it is set.
func (c *Collector) CollectValid(onReject func(reactor.Validation)) (reactor.Params, error) {
	for {
		p, err := c.Collect()
		if err != nil {
			return reactor.Params{}, err
		}
		v := reactor.ValidateFlows(p.Flows)
		if v.OK() {
			return p, nil
		}
		for _, eq := range v.Violations {
			fmt.Fprintf(c.out, "Sorry, that doesn't satisfy %s\n", eq)
		}
		if onReject != nil {
			onReject(v)
		}
	}
}

// ConfirmSave asks whether to keep the inputs; y or Y accepts.
func (c *Collector) ConfirmSave() (bool, error) {
	fmt.Fprintln(c.out, "Would you like to save these values to file?")
	w, err := c.word()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(w[:1], "y"), nil
}

// ChooseRecord lists records and reads a 1-based choice. It returns the
// zero-based index, or -1 for 0 or any number outside the list.
func (c *Collector) ChooseRecord(records []recordstore.Record) (int, error) {
	if len(records) == 0 {
		return -1, nil
	}
	fmt.Fprintln(c.out, "You have the following saved testcases:")
	WriteRecords(c.out, records)

	for {
		fmt.Fprintln(c.out, "Would you like to use one of the saved testcases? Enter the record number, or 0 if not.")
		w, err := c.word()
		if err != nil {
			return -1, err
		}
		n, err := strconv.Atoi(w)
		if err != nil {
			fmt.Fprintf(c.out, "Sorry, %q is not a record number\n", w)
			continue
		}
		if n < 1 || n > len(records) {
			return -1, nil
		}
		return n - 1, nil
	}
}

// WriteRecords prints each record in the saved-testcase layout.
func WriteRecords(w io.Writer, records []recordstore.Record) {
	for i, r := range records {
		WriteRecord(w, i+1, r)
	}
}

// WriteRecord prints r under its 1-based number.
func WriteRecord(w io.Writer, number int, r recordstore.Record) {
	fmt.Fprintf(w, "Record %d\n", number)
	fmt.Fprintln(w, "==========")
	fmt.Fprintf(w, "Volumes V1: %f V2: %f  V3: %f\n", r.V1, r.V2, r.V3)
	fmt.Fprintf(w, "Q Values  Q01: %f Q03: %f  Q12: %f  Q23: %f  Q31: %f  Q33: %f\n",
		r.Q01, r.Q03, r.Q12, r.Q23, r.Q31, r.Q33)
	fmt.Fprintf(w, "Concentrations C01: %f C03: %f  C10: %f  C20: %f C30: %f\n",
		r.C01, r.C03, r.C10, r.C20, r.C30)
	fmt.Fprintf(w, "Time Final tf: %f\n", r.TFinal)
}
