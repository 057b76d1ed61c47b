package rustegex

import "fmt"

// UnknownEngineError reports that New was asked for an engine selector it
// does not recognize. The only valid selectors are "dfa", "vm" and
// "derivative"; the comparison is case-sensitive.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("rustegex: unknown engine %q (want \"dfa\", \"vm\" or \"derivative\")", e.Name)
}
