package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// collectReports expands each argument into report file paths. Directory
// arguments contribute every *.out file they contain. The result is in
// natural sort order, so "file2.out" precedes "file10.out".
func collectReports(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if strings.EqualFold(filepath.Ext(arg), ".csv") {
			// Almost always a previous results file passed back in by accident.
			logger.Warn("skipping csv argument, reports are .out files", "file", arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".out") {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no report files found")
	}
	sort.Slice(paths, func(i, j int) bool { return naturalLess(paths[i], paths[j]) })
	return paths, nil
}

// outputDir returns the common parent directory of the given reports, used to
// place combined results tables. Reports spread across directories have no
// single home for a combined file.
func outputDir(paths []string) (string, error) {
	dir := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		if filepath.Dir(p) != dir {
			return "", fmt.Errorf("reports span multiple directories; combined results need a single directory")
		}
	}
	return dir, nil
}

// naturalLess compares two strings with embedded numbers compared
// numerically.
func naturalLess(a, b string) bool {
	ka, kb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] == kb[i] {
			continue
		}
		na, aIsNum := numericChunk(ka[i])
		nb, bIsNum := numericChunk(kb[i])
		if aIsNum && bIsNum {
			return na < nb
		}
		return ka[i] < kb[i]
	}
	return len(ka) < len(kb)
}

// naturalKey splits a string into alternating runs of digits and non-digits.
func naturalKey(s string) []string {
	var chunks []string
	var cur strings.Builder
	curDigit := false
	for _, r := range strings.ToLower(s) {
		isDigit := unicode.IsDigit(r)
		if cur.Len() > 0 && isDigit != curDigit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
		curDigit = isDigit
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

func numericChunk(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
