package task

import (
	"github.com/taskpipe/taskpipe/pkg/logger"
	"github.com/taskpipe/taskpipe/pkg/sliceutil"
)

var mergeLog = logger.New("task:merge")

// Source publishes the name-value pairs an object contributes to a merge.
// Fields, *Result and *Core all implement Source; tasks with typed fields
// shadow Core.MergeFields to publish them.
type Source interface {
	MergeFields() Fields
}

// FieldSetter binds merged values to a task's typed fields. SetField returns
// true when the task claimed the name; unclaimed names land in the task's
// State bag. HasField reports whether the named field currently holds a
// non-default value, which KeepExisting merges use to leave it untouched.
type FieldSetter interface {
	SetField(name string, value any) bool
	HasField(name string) bool
}

// MergeVeto lets a task type permanently exclude field names from every
// merge, regardless of per-merge options.
type MergeVeto interface {
	ExcludeFromMerge() []string
}

// MergeOptions selects which source fields a merge copies. The zero value
// merges every published field and overwrites existing values.
type MergeOptions struct {
	// Include restricts the merge to the listed names. Ignored when Exclude
	// is also given.
	Include []string

	// Exclude drops the listed names. Takes priority over Include.
	Exclude []string

	// KeepExisting skips names the target already holds a value for,
	// instead of overwriting.
	KeepExisting bool
}

// reserved names that never merge: each task owns its result and state
// containers by identity.
var reservedNames = []string{"result", "state"}

// Merge copies the source's published fields onto the task. Values claimed
// by the task's FieldSetter land on typed fields; everything else lands in
// State. The copy is shallow: container values are shared by reference.
//
// Merge is the hand-off mechanism for both CLI argument binding and pipeline
// composition. The effective precedence for a field touched more than once
// is strictly last-writer-wins: constructor values, then each Merge call in
// order, unless KeepExisting inverts that for a given call.
func Merge(t Task, src Source, opts MergeOptions) {
	if src == nil {
		return
	}
	c := t.TaskCore()
	c.init()

	exclude := opts.Exclude
	include := opts.Include
	if len(exclude) > 0 {
		// Explicit exclusions take priority; a conflicting include list is
		// ignored rather than intersected.
		include = nil
	}
	if veto, ok := t.(MergeVeto); ok {
		exclude = append(exclude, veto.ExcludeFromMerge()...)
	}

	for name, value := range src.MergeFields() {
		if sliceutil.Contains(reservedNames, name) {
			continue
		}
		if sliceutil.Contains(exclude, name) {
			continue
		}
		if len(include) > 0 && !sliceutil.Contains(include, name) {
			continue
		}
		mergeField(t, c, name, value, opts.KeepExisting)
	}
}

func mergeField(t Task, c *Core, name string, value any, keepExisting bool) {
	if setter, ok := t.(FieldSetter); ok {
		if keepExisting && setter.HasField(name) {
			mergeLog.Printf("keeping existing field %q on %T", name, t)
			return
		}
		if setter.SetField(name, value) {
			return
		}
	}
	if keepExisting {
		if _, exists := c.State[name]; exists {
			mergeLog.Printf("keeping existing state entry %q on %T", name, t)
			return
		}
	}
	c.State[name] = value
}
