// Package task implements a small task-execution framework built around a
// three-phase lifecycle: optional setup, the primary work step, and optional
// teardown that runs regardless of how the work step concluded.
//
// A task is any type that embeds Core and implements Perform. The Run engine
// drives the lifecycle, captures failures into the task's Result (or
// propagates them when Propagate is set), and guarantees teardown runs
// exactly once per invocation.
//
// Completed tasks compose into pipelines: Pipe merges a finished task's
// state and result fields into the next task before running it, and Pipeline
// chains any number of stages with strictly sequential hand-off and
// short-circuit on failure.
//
// State exchange is explicit. Every merge source publishes its fields
// through the Source interface, and tasks bind incoming values to typed
// fields through FieldSetter; anything unclaimed lands in the task's State
// bag. There is no reflection over task types.
package task
