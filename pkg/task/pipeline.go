package task

import (
	"errors"
	"fmt"

	"github.com/taskpipe/taskpipe/pkg/logger"
)

var pipeLog = logger.New("task:pipeline")

// ErrNotCompleted is returned when the left side of a pipe has not finished
// a run. Composition is defined only as completed-into-unrun; the reverse
// order is a programming error, not a recoverable condition.
var ErrNotCompleted = errors.New("task has not completed a run")

// Pipe hands a completed task's output to the next stage: it merges from's
// published fields (state, result fields and any captured failure) onto to,
// then runs to. from must have completed a run first, teardown included;
// there is no interleaving of stages.
func Pipe(from, to Task) error {
	if from == nil || to == nil {
		return errors.New("pipe requires two tasks")
	}
	if !from.TaskCore().Completed() {
		return fmt.Errorf("cannot pipe from %T: %w", from, ErrNotCompleted)
	}

	src, ok := from.(Source)
	if !ok {
		src = from.TaskCore()
	}
	pipeLog.Printf("piping %T into %T", from, to)
	Merge(to, src, MergeOptions{})
	return Run(to)
}

// Pipeline composes tasks into a strictly sequential chain. Each stage fully
// completes (teardown included) before its output is merged into the next
// stage; a propagated failure short-circuits the chain, and later stages are
// never merged into or run.
type Pipeline struct {
	stages []Task
}

// NewPipeline returns a pipeline over the given stages, in order.
func NewPipeline(stages ...Task) *Pipeline {
	return &Pipeline{stages: stages}
}

// Append adds stages to the end of the pipeline and returns it for chaining.
func (p *Pipeline) Append(stages ...Task) *Pipeline {
	p.stages = append(p.stages, stages...)
	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Run executes the stages left to right and returns the last completed
// stage. On a propagated failure the error identifies the failing stage and
// execution stops there.
func (p *Pipeline) Run() (Task, error) {
	if len(p.stages) == 0 {
		return nil, errors.New("pipeline has no stages")
	}

	pipeLog.Printf("running pipeline with %d stages", len(p.stages))
	first := p.stages[0]
	if err := Run(first); err != nil {
		return nil, fmt.Errorf("pipeline stage 1 (%T): %w", first, err)
	}

	prev := first
	for i, next := range p.stages[1:] {
		if err := Pipe(prev, next); err != nil {
			return nil, fmt.Errorf("pipeline stage %d (%T): %w", i+2, next, err)
		}
		prev = next
	}
	return prev, nil
}
