package properties

import (
	"fmt"

	"thirdcoast.systems/fileprops/pkg/rows"
)

// Outcome is the result of running one source. Optional outcomes with an
// error are dropped by the aggregator; a mandatory one aborts it.
type Outcome struct {
	Source   string
	Optional bool
	Rows     []rows.Row
	Err      error
}

// SourceError reports the failure of a mandatory source.
type SourceError struct {
	Source string
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("properties: %s source failed for %s: %v", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
