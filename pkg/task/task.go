package task

import (
	"errors"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"

	"github.com/taskpipe/taskpipe/pkg/logger"
)

var runLog = logger.New("task:run")

// Task is a unit of work. Concrete tasks embed Core (which provides
// TaskCore) and implement Perform.
type Task interface {
	// Perform executes the primary work step. Returning an error marks the
	// run as failed; whether the error is captured into the result or
	// propagated to the caller is governed by Core.Propagate.
	Perform() error

	// TaskCore returns the embedded lifecycle state.
	TaskCore() *Core
}

// Setup is implemented by tasks that need a preparation step before Perform.
// Setup failures always propagate: Perform and Teardown do not run.
type Setup interface {
	Setup() error
}

// Teardown is implemented by tasks that need a cleanup step after Perform.
// Teardown runs exactly once per Run invocation regardless of Perform's
// outcome, and its failures always propagate.
type Teardown interface {
	Teardown() error
}

// Core is the lifecycle state embedded by every task.
type Core struct {
	// ID identifies the task instance in debug logs. Assigned on first Run
	// if empty.
	ID string

	// State holds named values that were merged into the task but not
	// claimed by a typed field.
	State Fields

	// Result is the task's owned result, created lazily before first use.
	Result *Result

	// Propagate controls the failure policy for Perform: when false (the
	// default) a failure is captured into Result.Err and Run returns nil;
	// when true the failure is returned from Run after teardown.
	Propagate bool

	completed bool
	runs      int
}

// TaskCore implements Task for any type embedding Core.
func (c *Core) TaskCore() *Core { return c }

// Completed reports whether the most recent Run finished without a
// propagated failure. Captured failures still count as completed.
func (c *Core) Completed() bool { return c.completed }

// Runs returns how many times the full lifecycle has executed.
func (c *Core) Runs() int { return c.runs }

// MergeFields implements Source: the task's state bag plus its result
// fields, with the captured failure under ErrField when one is set. Tasks
// with typed fields shadow this method to publish them as well.
func (c *Core) MergeFields() Fields {
	out := make(Fields, len(c.State))
	maps.Copy(out, c.State)
	if c.Result != nil {
		maps.Copy(out, c.Result.MergeFields())
	}
	return out
}

func (c *Core) init() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.State == nil {
		c.State = Fields{}
	}
	if c.Result == nil {
		c.Result = NewResult()
	}
}

// Run drives the task lifecycle: Setup (if implemented), Perform, then
// Teardown (if implemented). Teardown runs even when Perform fails, so
// cleanup has a finally-style guarantee.
//
// A Perform failure is captured into Result.Err unless Propagate is set, in
// which case it is returned after teardown has run. Setup and Teardown
// failures always propagate. When both Perform and Teardown fail under
// Propagate, the two errors are joined with the Perform error first.
//
// Calling Run again re-executes the full lifecycle; Result.Err is cleared at
// the start of each invocation.
func Run(t Task) error {
	c := t.TaskCore()
	c.init()
	name := fmt.Sprintf("%T", t)

	runLog.Printf("running task %s id=%s run=%d", name, c.ID, c.runs+1)
	c.completed = false
	c.Result.Err = nil

	if s, ok := t.(Setup); ok {
		if err := s.Setup(); err != nil {
			return fmt.Errorf("task %s setup failed: %w", name, err)
		}
	}

	performErr := capturePerform(t)
	c.runs++

	// Teardown always runs once Perform has been attempted.
	var teardownErr error
	if td, ok := t.(Teardown); ok {
		teardownErr = td.Teardown()
	}

	if performErr != nil && c.Propagate {
		runLog.Printf("task %s failed, propagating: %v", name, performErr)
		if teardownErr != nil {
			return errors.Join(performErr, fmt.Errorf("task %s teardown failed: %w", name, teardownErr))
		}
		return performErr
	}
	if performErr != nil {
		runLog.Printf("task %s failed, captured: %v", name, performErr)
		c.Result.Err = performErr
	}
	if teardownErr != nil {
		return fmt.Errorf("task %s teardown failed: %w", name, teardownErr)
	}

	c.completed = true
	runLog.Printf("finished task %s id=%s", name, c.ID)
	return nil
}

// capturePerform runs Perform and converts a panic into an error, so a
// panicking task cannot skip teardown or take down the whole process.
func capturePerform(t Task) (err error) {
	if recovered := panics.Try(func() { err = t.Perform() }); recovered != nil {
		return fmt.Errorf("task %T panicked: %w", t, recovered.AsError())
	}
	return err
}
