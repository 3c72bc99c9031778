// Package template loads and validates per-county phrase templates.
//
// A template is a YAML document mapping each command kind to the phrases that
// identify its header, flow-rate line, and time-of-concentration line, plus
// the section-start and confluence-summary marker phrases. Defaults for the
// supported counties ship embedded in the binary; TEMPLATE_DIR points the
// resolver at external documents instead.
package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

//go:embed templates/*.yaml
var defaultTemplates embed.FS

// Template is the resolved, immutable phrase bundle for one county. All
// phrases are lowercase and every command present in Commands has entries in
// FlowRate and TimeOfConcentration; Resolve enforces both.
type Template struct {
	County              domain.County
	Commands            map[domain.CommandKind][]string
	FlowRate            map[domain.CommandKind][]string
	TimeOfConcentration map[domain.CommandKind][]string
	SectionStart        string
	ConfluenceSummary   string
}

// CommandFor classifies a line against the command phrase lists. Precedence is
// the fixed CommandKind declaration order, so classification is deterministic
// even when multiple phrases match.
func (t *Template) CommandFor(line string) (domain.CommandKind, bool) {
	for _, kind := range domain.AllCommandKinds() {
		for _, phrase := range t.Commands[kind] {
			if strings.Contains(line, phrase) {
				return kind, true
			}
		}
	}
	return domain.CommandUnknown, false
}

// phraseList accepts either a bare scalar or a sequence in YAML; a scalar is
// normalized to a single-element list.
type phraseList []string

func (p *phraseList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*p = phraseList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		*p = ss
		return nil
	default:
		return fmt.Errorf("line %d: phrase value must be a string or list of strings", value.Line)
	}
}

// templateDoc mirrors the on-disk YAML schema.
type templateDoc struct {
	Commands            map[string]phraseList `yaml:"commands"`
	FlowRate            map[string]phraseList `yaml:"flowrate"`
	TimeOfConcentration map[string]phraseList `yaml:"time-of-concentration"`
	NewSectionText      string                `yaml:"new-section-text"`
	ConfluenceSummary   string                `yaml:"confluence-summary-text"`
}

// Resolver loads county templates. With an empty dir it serves the embedded
// defaults; otherwise documents must exist under dir.
type Resolver struct {
	dir string
}

// NewResolver creates a Resolver. dir may be empty to use embedded templates.
func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve loads, validates, and normalizes the template for a county. It is
// idempotent: resolving the same county twice yields equal Templates.
func (r *Resolver) Resolve(county domain.County) (*Template, error) {
	path, data, err := r.read(county)
	if err != nil {
		return nil, err
	}

	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.MalformedTemplateError{Path: path, Reason: err.Error()}
	}

	tpl := &Template{
		County:            county,
		SectionStart:      strings.ToLower(doc.NewSectionText),
		ConfluenceSummary: strings.ToLower(doc.ConfluenceSummary),
	}
	if tpl.SectionStart == "" {
		return nil, &domain.MalformedTemplateError{Path: path, Reason: "missing new-section-text"}
	}
	if tpl.ConfluenceSummary == "" {
		return nil, &domain.MalformedTemplateError{Path: path, Reason: "missing confluence-summary-text"}
	}

	if tpl.Commands, err = resolvePhrases(path, "commands", doc.Commands); err != nil {
		return nil, err
	}
	if tpl.FlowRate, err = resolvePhrases(path, "flowrate", doc.FlowRate); err != nil {
		return nil, err
	}
	if tpl.TimeOfConcentration, err = resolvePhrases(path, "time-of-concentration", doc.TimeOfConcentration); err != nil {
		return nil, err
	}
	if len(tpl.Commands) == 0 {
		return nil, &domain.MalformedTemplateError{Path: path, Reason: "missing commands mapping"}
	}

	// Every command usable during extraction needs flow-rate and TOC phrases;
	// catching the gap at load time beats a mid-file surprise.
	for kind := range tpl.Commands {
		if len(tpl.FlowRate[kind]) == 0 {
			return nil, &domain.MalformedTemplateError{Path: path, Reason: fmt.Sprintf("command %s has no flowrate phrases", kind)}
		}
		if len(tpl.TimeOfConcentration[kind]) == 0 {
			return nil, &domain.MalformedTemplateError{Path: path, Reason: fmt.Sprintf("command %s has no time-of-concentration phrases", kind)}
		}
	}

	return tpl, nil
}

func (r *Resolver) read(county domain.County) (string, []byte, error) {
	if r.dir != "" {
		path := filepath.Join(r.dir, county.TemplateFile())
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, &domain.ConfigNotFoundError{County: county, Path: path}
		}
		if err != nil {
			return "", nil, fmt.Errorf("read template: %w", err)
		}
		return path, data, nil
	}

	path := "templates/" + county.TemplateFile()
	data, err := defaultTemplates.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, &domain.ConfigNotFoundError{County: county, Path: path}
	}
	if err != nil {
		return "", nil, fmt.Errorf("read embedded template: %w", err)
	}
	return path, data, nil
}

func resolvePhrases(path, section string, raw map[string]phraseList) (map[domain.CommandKind][]string, error) {
	out := make(map[domain.CommandKind][]string, len(raw))
	for name, phrases := range raw {
		kind, ok := domain.CommandKindByName(name)
		if !ok {
			return nil, &domain.MalformedTemplateError{Path: path, Reason: fmt.Sprintf("%s: unknown command key %q", section, name)}
		}
		if len(phrases) == 0 {
			return nil, &domain.MalformedTemplateError{Path: path, Reason: fmt.Sprintf("%s: command %s has an empty phrase list", section, name)}
		}
		lowered := make([]string, len(phrases))
		for i, p := range phrases {
			if strings.TrimSpace(p) == "" {
				return nil, &domain.MalformedTemplateError{Path: path, Reason: fmt.Sprintf("%s: command %s has an empty phrase", section, name)}
			}
			lowered[i] = strings.ToLower(p)
		}
		out[kind] = lowered
	}
	return out, nil
}
