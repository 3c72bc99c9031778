package domain

import "time"

// Record is one extracted result: a node-pair label and the section's peak
// flow rate (CFS) and time of concentration (minutes). Records are immutable
// once emitted.
type Record struct {
	Label               string  `json:"nodes"`
	FlowRate            float64 `json:"flow_rate_cfs"`
	TimeOfConcentration float64 `json:"toc_min"`
}

// FileResult is the outcome of extracting one report file.
type FileResult struct {
	SourceFile string    `json:"source_file"`
	County     County    `json:"-"`
	Records    []Record  `json:"records"`
	// DiscardedSections counts confluence stubs that legitimately carried no
	// flow data and therefore produced no record.
	DiscardedSections int       `json:"-"`
	ProcessedAt       time.Time `json:"processed_at"`
}
