package recordstore_test

import (
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/recordstore"
)

func sampleRecord(i int) recordstore.Record {
	return recordstore.Record{
		V1: 10, V2: 10, V3: 10,
		Q01: 5, Q03: 5, Q12: 10, Q23: 10, Q31: 5, Q33: 10,
		C01: 1, C03: 1,
		C10: float64(i), C20: 0.5, C30: 0.25,
		TFinal: 10 + float64(i),
	}
}

func behavesLikeAStore(open func(dir string) recordstore.Store) {
	var st recordstore.Store

	BeforeEach(func() {
		st = open(GinkgoT().TempDir())
		DeferCleanup(func() {
			Expect(st.Close()).To(Succeed())
		})
	})

	It("starts empty", func() {
		Expect(st.Count()).To(Equal(0))
		Expect(st.List()).To(BeEmpty())
	})

	It("returns records in insertion order", func() {
		for i := 0; i < 3; i++ {
			Expect(st.Append(sampleRecord(i))).To(Succeed())
		}

		records, err := st.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(3))
		for i, r := range records {
			Expect(r).To(Equal(sampleRecord(i)))
		}

		r, err := st.Get(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.C10).To(Equal(2.0))
	})

	It("rejects the sixth append and keeps the count at five", func() {
		for i := 0; i < recordstore.MaxRecords; i++ {
			Expect(st.Append(sampleRecord(i))).To(Succeed())
		}

		Expect(st.Append(sampleRecord(99))).To(MatchError(recordstore.ErrFull))
		Expect(st.Count()).To(Equal(recordstore.MaxRecords))

		last, err := st.Get(recordstore.MaxRecords - 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(last).To(Equal(sampleRecord(recordstore.MaxRecords - 1)))
	})

	It("rejects non-finite values and stores nothing", func() {
		nan := sampleRecord(0)
		nan.C20 = math.NaN()
		Expect(st.Append(nan)).To(MatchError(recordstore.ErrNonFinite))

		inf := sampleRecord(1)
		inf.TFinal = math.Inf(1)
		Expect(st.Append(inf)).To(MatchError(recordstore.ErrNonFinite))

		Expect(st.Count()).To(Equal(0))
		Expect(st.Append(sampleRecord(2))).To(Succeed())
		Expect(st.Count()).To(Equal(1))
	})

	It("reports out of range indexes", func() {
		Expect(st.Append(sampleRecord(0))).To(Succeed())

		_, err := st.Get(1)
		Expect(err).To(MatchError(recordstore.ErrNoRecord))
		_, err = st.Get(-1)
		Expect(err).To(MatchError(recordstore.ErrNoRecord))
	})

	It("clears every record", func() {
		Expect(st.Append(sampleRecord(0))).To(Succeed())
		Expect(st.Clear()).To(Succeed())
		Expect(st.Count()).To(Equal(0))
		Expect(st.Append(sampleRecord(1))).To(Succeed())
		Expect(st.Count()).To(Equal(1))
	})
}

var _ = Describe("Record", func() {
	It("round trips through reactor params", func() {
		p := reactor.Params{
			Geometry: reactor.Geometry{V1: 1, V2: 2, V3: 3},
			Flows:    reactor.FlowRates{Q01: 4, Q03: 5, Q12: 6, Q23: 7, Q31: 8, Q33: 9},
			Feed:     reactor.Feed{C01: 10, C03: 11},
			Initial:  reactor.Initial{C1: 12, C2: 13, C3: 14},
			Horizon:  reactor.Horizon{TFinal: 15},
		}

		r := recordstore.FromParams(p)
		Expect(r.Q23).To(Equal(7.0))
		Expect(r.C30).To(Equal(14.0))
		Expect(r.Params()).To(Equal(p))
	})
})

var _ = Describe("FileStore", func() {
	behavesLikeAStore(func(dir string) recordstore.Store {
		return recordstore.NewFileStore(filepath.Join(dir, "records.bin"))
	})

	var (
		path string
		st   *recordstore.FileStore
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "nested", "records.bin")
		st = recordstore.NewFileStore(path)
	})

	It("writes 120 bytes per record", func() {
		Expect(recordstore.RecordSize).To(Equal(120))
		Expect(st.Append(sampleRecord(0))).To(Succeed())
		Expect(st.Append(sampleRecord(1))).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(Equal(int64(2 * recordstore.RecordSize)))
	})

	It("treats a short trailing record as the end of the data", func() {
		Expect(st.Append(sampleRecord(0))).To(Succeed())

		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Write(make([]byte, 17))
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Close()).To(Succeed())

		Expect(st.Count()).To(Equal(1))

		Expect(st.Append(sampleRecord(1))).To(Succeed())
		records, err := st.List()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(Equal([]recordstore.Record{sampleRecord(0), sampleRecord(1)}))
	})

	It("reads at most five records from an oversized file", func() {
		for i := 0; i < recordstore.MaxRecords; i++ {
			Expect(st.Append(sampleRecord(i))).To(Succeed())
		}
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(os.WriteFile(path, append(data, data[:recordstore.RecordSize]...), 0644)).To(Succeed())

		Expect(st.Count()).To(Equal(recordstore.MaxRecords))
	})
})

var _ = Describe("SQLiteStore", func() {
	behavesLikeAStore(func(dir string) recordstore.Store {
		st, err := recordstore.OpenSQLite(filepath.Join(dir, "records.db"))
		Expect(err).NotTo(HaveOccurred())
		return st
	})
})

var _ = Describe("Open", func() {
	It("selects a backend by name", func() {
		dir := GinkgoT().TempDir()

		st, err := recordstore.Open("", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(st).To(BeAssignableToTypeOf(&recordstore.FileStore{}))

		st, err = recordstore.Open(recordstore.BackendSQLite, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(st).To(BeAssignableToTypeOf(&recordstore.SQLiteStore{}))
		Expect(st.Close()).To(Succeed())

		_, err = recordstore.Open("tape", dir)
		Expect(err).To(MatchError(ContainSubstring("unknown record store backend")))
	})
})
