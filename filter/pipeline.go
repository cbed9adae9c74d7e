package filter

import (
	"reflect"

	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/settings"
)

// Line is one input line, delimiter stripped, plus the bytes it is deduplicated on.
// Raw is only valid until the next line is read.
type Line struct {
	Raw []byte
	Key []byte
}

// LineAction represents a stage of pipeline filtering.
type LineAction interface {
	// LineMod allows for transformation of the line key.
	// Returning nil drops the line, with the string describing why.
	LineMod(line *Line) (string, *Line)
	GetName() string
}

// Pipeline encapsulates a series of stages that are applied to every line.
type Pipeline struct {
	actions []LineAction
	names   []string
}

func NewPipeline(actions []LineAction) *Pipeline {
	filteredActions := []LineAction{}
	names := []string{}
	for _, act := range actions {
		if act == nil || reflect.ValueOf(act).IsNil() {
			// this stage was not initialised, so should be dropped
			continue
		}
		filteredActions = append(filteredActions, act)
		names = append(names, act.GetName())
	}
	return &Pipeline{filteredActions, names}
}

// Names of the active stages, in order.
func (p *Pipeline) Names() []string { return p.names }

// RunLineActions executes each stage in order.
// Returns an empty string if the line should be emitted, otherwise the stage and reason it was dropped.
func (p *Pipeline) RunLineActions(line *Line) string {
	for i, f := range p.actions {
		state, replacement := f.LineMod(line)
		if replacement != nil {
			line = replacement
			continue
		}
		if len(state) == 0 {
			// if replacement nil and state len 0, invalid - non-fatal error
			st.Logger.Error().Str("stage", p.names[i]).Msg("pipeline stage dropped line without a reason")
			state = "unknown"
		}
		// use stage name in state to prevent confusion about source of filtering
		reason := p.names[i] + "-" + state
		prom.LinesPipelineFiltered.WithLabelValues(reason).Inc()
		return reason
	}
	return ""
}
