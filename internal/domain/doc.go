// Package domain models rational method hydrology report data.
//
// # Data Source
//
// Reports are plain-text output files (.out) written by the CIVILCADD/CIVILDESIGN
// rational method hydrology programs used by Southern California flood control
// districts. Each file documents a chain of computation sections; a section
// starts with a "process from point/station" header, names the computation that
// was performed, and reports the resulting peak flow rate and time of
// concentration a few lines later.
//
// All matching is performed on lowercased lines, so phrase templates and report
// dialects compare case-insensitively.
//
// # Report Conventions
//
// Section header and node line:
//
//	Each section begins with the county's section-start phrase. The following
//	line carries the upstream and downstream node numbers as whitespace tokens
//	3 and 6, e.g.
//
//	  Process from Point/Station      101.000 to Point/Station      102.000
//
//	Node numbers are printed with three-decimal zero padding; genuinely
//	fractional station numbers (101.500) do occur and keep their fraction.
//
// Command classification:
//
//	The lines after the node line name the computation type in free text
//	("**** INITIAL AREA EVALUATION ****"). Each county template maps every
//	CommandKind to one or more identifying phrases.
//
// Flow rate and time of concentration:
//
//	Located by per-command phrases. Two layouts exist across dialects:
//
//	  Total runoff =      3.141(CFS)
//	  Initial area time of concentration =   17.553 min.
//
//	The value is either the line's trailing token with a parenthesised unit
//	suffix, or a number immediately followed by a unit word. Flow rates are in
//	CFS (cubic feet per second), times of concentration in minutes. See
//	[ExtractValue].
//
// Confluences:
//
//	Confluence sections (minor or main streams) only report per-stream flow
//	data when the report includes a "summary of stream data" sub-block. A
//	confluence section without that sub-block is a legitimate stub and yields
//	no record. Confluence-derived records are flagged with a leading asterisk
//	on their node label ("*101-102") for downstream spreadsheets.
//
// # Counties
//
// The supported jurisdictions are San Bernardino and Riverside. The county is
// detected from the report text itself (the program prints the district name in
// the file header) and selects which phrase template applies. There is no
// default county; an undetectable county is fatal for the file.
package domain
