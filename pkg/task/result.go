package task

import "maps"

// ErrField is the reserved field name under which a captured failure is
// published when a completed task's result is merged into another task.
const ErrField = "err"

// Fields is a bag of named values exchanged between tasks. Values are copied
// by name, not by structure: mutable values are shared by reference across a
// merge.
type Fields map[string]any

// MergeFields implements Source.
func (f Fields) MergeFields() Fields { return f }

// Clone returns a shallow copy of the bag.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	maps.Copy(out, f)
	return out
}

// Result holds a task's output fields and, when the work step failed and the
// failure was captured rather than propagated, the failure itself. Each task
// owns exactly one Result; results are never shared between task instances.
type Result struct {
	// Err is set if and only if Perform failed and the owning task did not
	// propagate the failure.
	Err error

	// Fields holds named output values for downstream consumers.
	Fields Fields
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{Fields: Fields{}}
}

// Set records a named output value.
func (r *Result) Set(name string, value any) {
	if r.Fields == nil {
		r.Fields = Fields{}
	}
	r.Fields[name] = value
}

// Get returns a named output value and whether it is present.
func (r *Result) Get(name string) (any, bool) {
	value, ok := r.Fields[name]
	return value, ok
}

// MergeFields implements Source: the result's output fields, plus the
// captured failure under ErrField when one is set.
func (r *Result) MergeFields() Fields {
	out := r.Fields.Clone()
	if r.Err != nil {
		out[ErrField] = r.Err
	}
	return out
}
