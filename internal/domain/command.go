package domain

import "fmt"

// CommandKind identifies a rational method computation type. The set is closed:
// adding a kind means adding the enum member here, its name in commandNames,
// and phrase entries in every county template.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	InitialArea
	StreetFlow
	StreetInlet
	SubareaAddition
	PipeflowProgram
	PipeflowUser
	ChannelImproved
	ChannelIrregular
	UserDefined
	ConfluenceMinor
	ConfluenceMain
)

// commandNames maps kinds to their template key names. Declaration order is
// also the classification precedence: the first kind whose phrase matches a
// line wins.
var commandNames = map[CommandKind]string{
	InitialArea:      "INITIAL_AREA",
	StreetFlow:       "STREET_FLOW",
	StreetInlet:      "STREET_INLET",
	SubareaAddition:  "SUBAREA_ADDITION",
	PipeflowProgram:  "PIPEFLOW_PROGRAM",
	PipeflowUser:     "PIPEFLOW_USER",
	ChannelImproved:  "CHANNEL_IMPROVED",
	ChannelIrregular: "CHANNEL_IRREGULAR",
	UserDefined:      "USER",
	ConfluenceMinor:  "CONFLUENCE_MINOR",
	ConfluenceMain:   "CONFLUENCE_MAIN",
}

// AllCommandKinds lists every valid kind in classification precedence order.
func AllCommandKinds() []CommandKind {
	return []CommandKind{
		InitialArea,
		StreetFlow,
		StreetInlet,
		SubareaAddition,
		PipeflowProgram,
		PipeflowUser,
		ChannelImproved,
		ChannelIrregular,
		UserDefined,
		ConfluenceMinor,
		ConfluenceMain,
	}
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// CommandKindByName resolves a template key to its kind.
func CommandKindByName(name string) (CommandKind, bool) {
	for kind, n := range commandNames {
		if n == name {
			return kind, true
		}
	}
	return CommandUnknown, false
}

// IsConfluence reports whether a kind is one of the two confluence commands,
// which are subject to the stream-data-summary gate and the asterisk label.
func IsConfluence(k CommandKind) bool {
	return k == ConfluenceMinor || k == ConfluenceMain
}
