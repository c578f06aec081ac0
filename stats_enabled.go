//go:build stats

package handleset

import "fmt"

// statCounters tracks the diagnostic counters named by the build-time
// STORE_STATISTICS switch: probe totals and maxima for find and insert,
// comparison and equality counts, and the hint byte sum/count needed to
// report average hint entropy. These have no effect on semantics -- they
// exist purely for DumpStats.
type statCounters struct {
	findProbes      uint64
	findProbesMax   uint64
	insertProbes    uint64
	insertProbesMax uint64
	compares        uint64
	equalMatches    uint64
	hintByteSum     uint64
	hintByteCount   uint64
}

func (s *statCounters) recordFindProbes(n uint64) {
	s.findProbes += n
	if n > s.findProbesMax {
		s.findProbesMax = n
	}
}

func (s *statCounters) recordInsertProbes(n uint64) {
	s.insertProbes += n
	if n > s.insertProbesMax {
		s.insertProbesMax = n
	}
}

func (s *statCounters) recordCompare(equal bool) {
	s.compares++
	if equal {
		s.equalMatches++
	}
}

func (s *statCounters) recordHint(h uint8) {
	s.hintByteSum += uint64(h)
	s.hintByteCount++
}

func (s *statCounters) avgHint() float64 {
	if s.hintByteCount == 0 {
		return 0
	}
	return float64(s.hintByteSum) / float64(s.hintByteCount)
}

// dump renders a textual snapshot of the counters. The format is
// diagnostic only, not a stable interface.
func (s *statCounters) dump() string {
	return fmt.Sprintf(
		"find: probes=%d max=%d\ninsert: probes=%d max=%d\ncompare: total=%d equal=%d\nhint: sum=%d count=%d avg=%.2f\n",
		s.findProbes, s.findProbesMax,
		s.insertProbes, s.insertProbesMax,
		s.compares, s.equalMatches,
		s.hintByteSum, s.hintByteCount, s.avgHint(),
	)
}
