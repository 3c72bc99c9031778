package domain

import (
	"fmt"
	"strings"
)

// County is the jurisdiction whose phrase template applies to a report.
type County int

const (
	CountyUnknown County = iota
	SanBernardino
	Riverside
)

// counties lists the supported jurisdictions in detection order.
var counties = []County{SanBernardino, Riverside}

// DisplayName returns the county name as printed in report headers.
func (c County) DisplayName() string {
	switch c {
	case SanBernardino:
		return "San Bernardino"
	case Riverside:
		return "Riverside"
	default:
		return fmt.Sprintf("County(%d)", int(c))
	}
}

// TemplateFile returns the filename of the county's phrase template.
func (c County) TemplateFile() string {
	return c.DisplayName() + ".yaml"
}

func (c County) String() string { return c.DisplayName() }

// DetectCounty scans lowercased report content for the first known county
// name. There is no fuzzy matching and no default: content that names no
// county yields an UnrecognizedCountyError.
func DetectCounty(content string) (County, error) {
	for _, c := range counties {
		if strings.Contains(content, strings.ToLower(c.DisplayName())) {
			return c, nil
		}
	}
	return CountyUnknown, &UnrecognizedCountyError{}
}
