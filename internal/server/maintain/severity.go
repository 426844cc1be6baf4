// Package maintain holds the reactive consistency maintainers: the
// components that repair derived cross-store state in response to lifecycle
// events, and the router that binds them into ordered per-event pipelines.
package maintain

import (
	"context"

	"github.com/fkkmemi/boardsync/internal/server/models"
)

// Severity classifies a pipeline step's failure policy.
type Severity int

const (
	// Advisory failures are caught at the step boundary, logged and
	// collected; sibling steps still run and the event succeeds.
	Advisory Severity = iota
	// Critical failures abort the event and propagate, leaving redelivery
	// to the trigger source.
	Critical
)

func (s Severity) String() string {
	if s == Critical {
		return "critical"
	}
	return "advisory"
}

// Step is one unit of a per-event pipeline.
type Step struct {
	Name     string
	Severity Severity
	Run      func(ctx context.Context, ev *models.Event) error
}

// Pipeline is the ordered step sequence bound to one event type. Reordering
// or adding a step is a data change, not a control-flow rewrite.
type Pipeline []Step

// StepError records one advisory failure.
type StepError struct {
	Step string
	Err  error
}

// Result summarizes an event's advisory failures. A non-empty Advisories
// slice still counts as a handled event.
type Result struct {
	Advisories []StepError
}
