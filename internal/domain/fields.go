package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// unitsValueRe matches a number immediately followed by a unit word at the end
// of a line, e.g. "= 3.141(cfs)" or "= 17.553 min.". Lines are lowercased
// before matching.
var unitsValueRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:\(\s*cfs\s*\)|cfs|min(?:utes)?\.?)\s*$`)

// ParseNodeLine reads the upstream and downstream node numbers from the line
// following a section header. The layout is fixed: whitespace tokens 3 and 6
// carry the node numbers ("process from point/station 101.000 to
// point/station 102.000"). Returned values have zero padding stripped.
func ParseNodeLine(line string) (node1, node2 string, err error) {
	tokens := strings.Fields(line)
	if len(tokens) < 7 {
		return "", "", fmt.Errorf("node line has %d tokens, need at least 7: %q", len(tokens), strings.TrimSpace(line))
	}
	node1, err = parseNodeToken(tokens[3])
	if err != nil {
		return "", "", err
	}
	node2, err = parseNodeToken(tokens[6])
	if err != nil {
		return "", "", err
	}
	return node1, node2, nil
}

func parseNodeToken(token string) (string, error) {
	if _, err := strconv.ParseFloat(token, 64); err != nil {
		return "", fmt.Errorf("node token %q is not numeric: %w", token, err)
	}
	return StripTrailingZeros(token), nil
}

// StripTrailingZeros removes decimal zero padding from a numeric string:
// "101.000" becomes "101", "101.500" becomes "101.5". Strings without a
// decimal point pass through unchanged, so the operation is idempotent.
func StripTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatLabel renders a node pair as "node1-node2". Confluence-derived labels
// get a leading asterisk so downstream spreadsheets can tell joined streams
// from ordinary sections.
func FormatLabel(node1, node2 string, kind CommandKind) string {
	if IsConfluence(kind) {
		return "*" + node1 + "-" + node2
	}
	return node1 + "-" + node2
}

// ExtractValue parses the numeric value from a line that matched a template
// phrase. It first takes the line's trailing whitespace token, stripping a
// parenthesised unit suffix ("3.141(cfs)"); if that token is not numeric it
// falls back to a units-aware pattern anchored at end of line ("17.553 min.").
// A line that matched a phrase but yields no number is a fatal
// NumericExtractionError: a declared match with unparsable content means the
// template and the report dialect disagree.
func ExtractValue(line string, lineNum int, phrase string) (float64, error) {
	if v, ok := parseTrailingToken(line); ok {
		return v, nil
	}
	if m := unitsValueRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, nil
		}
	}
	return 0, &NumericExtractionError{Line: lineNum, Phrase: phrase, Text: strings.TrimSpace(line)}
}

func parseTrailingToken(line string) (float64, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return 0, false
	}
	token, _, _ := strings.Cut(tokens[len(tokens)-1], "(")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FindValue tests a line against a phrase candidate list and, on the first
// phrase contained in the line, extracts the adjacent numeric value. The
// second return is false when no phrase matched at all.
func FindValue(line string, lineNum int, phrases []string) (float64, bool, error) {
	for _, phrase := range phrases {
		if strings.Contains(line, phrase) {
			v, err := ExtractValue(line, lineNum, phrase)
			if err != nil {
				return 0, true, err
			}
			return v, true, nil
		}
	}
	return 0, false, nil
}
