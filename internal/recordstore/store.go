// Package recordstore persists up to MaxRecords reactor input bundles so a
// session can recall a previous parameter set.
package recordstore

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/san-kum/reactorsim/internal/reactor"
)

// MaxRecords is the capacity of every store.
const MaxRecords = 5

var (
	// ErrFull is returned by Append once MaxRecords records exist.
	ErrFull = errors.New("recordstore: store is full")

	// ErrNoRecord is returned by Get for an index outside the stored range.
	ErrNoRecord = errors.New("recordstore: no such record")

	// ErrNonFinite is returned by Append for a record holding NaN or an
	// infinity. Both backends reject it; SQLite cannot store NaN in a
	// NOT NULL REAL column.
	ErrNonFinite = errors.New("recordstore: record holds a non-finite value")
)

// Record is one flattened input bundle. Field order is the on-disk order.
type Record struct {
	V1, V2, V3                   float64
	Q01, Q03, Q12, Q23, Q31, Q33 float64
	C01, C03                     float64
	C10, C20, C30                float64
	TFinal                       float64
}

func FromParams(p reactor.Params) Record {
	return Record{
		V1: p.Geometry.V1, V2: p.Geometry.V2, V3: p.Geometry.V3,
		Q01: p.Flows.Q01, Q03: p.Flows.Q03, Q12: p.Flows.Q12,
		Q23: p.Flows.Q23, Q31: p.Flows.Q31, Q33: p.Flows.Q33,
		C01: p.Feed.C01, C03: p.Feed.C03,
		C10: p.Initial.C1, C20: p.Initial.C2, C30: p.Initial.C3,
		TFinal: p.Horizon.TFinal,
	}
}

func (r Record) Params() reactor.Params {
	return reactor.Params{
		Geometry: reactor.Geometry{V1: r.V1, V2: r.V2, V3: r.V3},
		Flows: reactor.FlowRates{
			Q01: r.Q01, Q03: r.Q03, Q12: r.Q12,
			Q23: r.Q23, Q31: r.Q31, Q33: r.Q33,
		},
		Feed:    reactor.Feed{C01: r.C01, C03: r.C03},
		Initial: reactor.Initial{C1: r.C10, C2: r.C20, C3: r.C30},
		Horizon: reactor.Horizon{TFinal: r.TFinal},
	}
}

func (r Record) check() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"V1", r.V1}, {"V2", r.V2}, {"V3", r.V3},
		{"Q01", r.Q01}, {"Q03", r.Q03}, {"Q12", r.Q12},
		{"Q23", r.Q23}, {"Q31", r.Q31}, {"Q33", r.Q33},
		{"C01", r.C01}, {"C03", r.C03},
		{"C10", r.C10}, {"C20", r.C20}, {"C30", r.C30},
		{"TFinal", r.TFinal},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrNonFinite, f.name, f.v)
		}
	}
	return nil
}

// Store is a bounded, append-only collection of records. Indexes are
// zero-based and follow insertion order.
type Store interface {
	Count() (int, error)
	Append(r Record) error
	List() ([]Record, error)
	Get(index int) (Record, error)
	Clear() error
	Close() error
}

const (
	BackendBinary = "binary"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend inside dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", BackendBinary:
		return NewFileStore(filepath.Join(dir, "records.bin")), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "records.db"))
	default:
		return nil, fmt.Errorf("unknown record store backend: %s", backend)
	}
}

func getFrom(records []Record, index int) (Record, error) {
	if index < 0 || index >= len(records) {
		return Record{}, fmt.Errorf("%w: index %d of %d", ErrNoRecord, index, len(records))
	}
	return records[index], nil
}
