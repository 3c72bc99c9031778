// Package scan extracts peak values from fixed-window report tables. Unlike
// the rational method extraction these are straight-line scans: find the
// table's start and end markers, then read numeric columns from every row.
package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tableWindow locates a table between a start flag (plus offset) and an end
// flag (minus offset). Flags are compared against lowercased lines.
type tableWindow struct {
	startFlag   string
	startOffset int
	endFlag     string
	endOffset   int
}

// locate returns the half-open row range [i0, i1) of the table body, plus
// found=false when the start flag never appears.
func (w tableWindow) locate(lines []string) (i0, i1 int, found bool, err error) {
	i0, i1 = -1, -1
	start := strings.ToLower(w.startFlag)
	end := strings.ToLower(w.endFlag)

	for i, line := range lines {
		if i0 < 0 && strings.Contains(line, start) {
			i0 = i + w.startOffset
		}
		if i0 >= 0 && i > i0 && strings.Contains(line, end) {
			i1 = i - w.endOffset
			break
		}
	}

	if i0 < 0 {
		return 0, 0, false, nil
	}
	if i1 < 0 {
		return 0, 0, true, fmt.Errorf("found table start but no end flag %q", w.endFlag)
	}
	return i0, i1, true, nil
}

var (
	unitHydrographWindow = tableWindow{
		startFlag:   "R u n o f f      H y d r o g r a p h",
		startOffset: 7,
		endFlag:     "-----------------------------------------------------------------------",
		endOffset:   0,
	}

	basinRoutingWindow = tableWindow{
		startFlag:   "Hydrograph Detention Basin Routing",
		startOffset: 7,
		endFlag:     "****************************HYDROGRAPH DATA****************************",
		endOffset:   1,
	}

	// unitHydrographRowRe matches "<hh>+ <mm>  <volume>  <flow> ..." rows.
	unitHydrographRowRe = regexp.MustCompile(`^\s*(\d+\+\s*\d+)\s+([\d.]+)\s+([\d.]+)`)

	// decimalRe pulls the decimal columns out of a basin routing row.
	decimalRe = regexp.MustCompile(`\d+\.\d+`)
)

// UnitHydrographPeaks holds the peak flow rate (CFS) and volume (Ac.ft) of a
// unit hydrograph run.
type UnitHydrographPeaks struct {
	PeakFlowRate float64
	PeakVolume   float64
}

// BasinRoutingPeaks holds the peak outflow (CFS) and basin depth (ft) of a
// detention basin routing run.
type BasinRoutingPeaks struct {
	PeakOutflow float64
	PeakDepth   float64
}

// UnitHydrograph scans a unit hydrograph report for its peak flow rate and
// volume. A report without the hydrograph table is malformed.
func UnitHydrograph(lines []string) (UnitHydrographPeaks, error) {
	i0, i1, found, err := unitHydrographWindow.locate(lines)
	if err != nil {
		return UnitHydrographPeaks{}, err
	}
	if !found {
		return UnitHydrographPeaks{}, fmt.Errorf("no unit hydrograph table: start flag %q not found", unitHydrographWindow.startFlag)
	}

	var peaks UnitHydrographPeaks
	for i, line := range lines[i0:i1] {
		m := unitHydrographRowRe.FindStringSubmatch(line)
		if m == nil {
			return UnitHydrographPeaks{}, fmt.Errorf("line %d does not match the hydrograph table format", i0+i+1)
		}
		volume, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return UnitHydrographPeaks{}, fmt.Errorf("line %d: parse volume: %w", i0+i+1, err)
		}
		flow, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return UnitHydrographPeaks{}, fmt.Errorf("line %d: parse flow: %w", i0+i+1, err)
		}
		peaks.PeakVolume = max(peaks.PeakVolume, volume)
		peaks.PeakFlowRate = max(peaks.PeakFlowRate, flow)
	}
	return peaks, nil
}

// BasinRouting scans a basin routing report for its peak outflow and depth.
// found is false when the report has no routing table, which legitimately
// happens when the basin program was only used to combine hydrographs; such
// files are skipped, not failed.
func BasinRouting(lines []string) (peaks BasinRoutingPeaks, found bool, err error) {
	i0, i1, found, err := basinRoutingWindow.locate(lines)
	if err != nil || !found {
		return BasinRoutingPeaks{}, found, err
	}

	for i, line := range lines[i0:i1] {
		cols := decimalRe.FindAllString(line, -1)
		if len(cols) != 5 {
			return BasinRoutingPeaks{}, true, fmt.Errorf("line %d has %d decimal columns, expected 5", i0+i+1, len(cols))
		}
		outflow, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return BasinRoutingPeaks{}, true, fmt.Errorf("line %d: parse outflow: %w", i0+i+1, err)
		}
		depth, err := strconv.ParseFloat(cols[4], 64)
		if err != nil {
			return BasinRoutingPeaks{}, true, fmt.Errorf("line %d: parse depth: %w", i0+i+1, err)
		}
		peaks.PeakOutflow = max(peaks.PeakOutflow, outflow)
		peaks.PeakDepth = max(peaks.PeakDepth, depth)
	}
	return peaks, true, nil
}
