//go:build !stats

package handleset

// statCounters is the zero-size, no-op statistics sink used by default.
// Building with -tags stats swaps this for the real counters in
// stats_enabled.go; neither variant affects table semantics, only what
// DumpStats reports.
type statCounters struct{}

func (s *statCounters) recordFindProbes(uint64)   {}
func (s *statCounters) recordInsertProbes(uint64) {}
func (s *statCounters) recordCompare(bool)        {}
func (s *statCounters) recordHint(uint8)          {}

func (s *statCounters) dump() string { return "" }
