package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeMergesAndRuns(t *testing.T) {
	from := &greetTask{Name: "alice"}
	require.NoError(t, Run(from))

	to := &greetTask{}
	require.NoError(t, Pipe(from, to))

	assert.Equal(t, "alice", to.Name, "upstream typed field should bind downstream")
	assert.True(t, to.Completed())
	greeting, ok := to.Result.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello alice", greeting)
}

func TestPipeRequiresCompletedLeftSide(t *testing.T) {
	from := &greetTask{Name: "alice"}
	to := &greetTask{}

	err := Pipe(from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotCompleted)
	assert.False(t, to.Completed(), "the right side must not run when the left side is unfinished")
}

func TestPipeRejectsNilTasks(t *testing.T) {
	require.Error(t, Pipe(nil, &greetTask{}))
	require.Error(t, Pipe(&greetTask{}, nil))
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var log []string
	a := newLifecycleTask("a", &log)
	b := newLifecycleTask("b", &log)
	c := newLifecycleTask("c", &log)

	last, err := NewPipeline(a, b, c).Run()
	require.NoError(t, err)
	assert.Same(t, c, last)
	assert.Equal(t, []string{
		"a:setup", "a:perform", "a:teardown",
		"b:setup", "b:perform", "b:teardown",
		"c:setup", "c:perform", "c:teardown",
	}, log, "each stage must fully complete before the next starts")
}

func TestPipelineShortCircuitsOnPropagatedFailure(t *testing.T) {
	var log []string
	a := newLifecycleTask("a", &log)
	a.performErr = errors.New("stage a broke")
	a.Propagate = true
	b := newLifecycleTask("b", &log)

	_, err := NewPipeline(a, b).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, a.performErr)
	assert.Equal(t, 0, b.Runs(), "downstream stage must never run after a propagated failure")
	assert.Empty(t, b.State, "downstream stage must never be merged into after a propagated failure")
	assert.NotContains(t, log, "b:perform")
}

func TestPipelineCapturedFailureFlowsDownstream(t *testing.T) {
	var log []string
	a := newLifecycleTask("a", &log)
	a.performErr = errors.New("soft failure")
	b := newLifecycleTask("b", &log)

	last, err := NewPipeline(a, b).Run()
	require.NoError(t, err, "captured failures do not stop the pipeline")
	assert.Same(t, b, last)
	assert.Equal(t, a.performErr, b.State[ErrField], "captured failure should be visible to the next stage")
}

func TestPipelineGroupingDoesNotChangeOrdering(t *testing.T) {
	run := func(grouped bool) []string {
		var log []string
		a := newLifecycleTask("a", &log)
		b := newLifecycleTask("b", &log)
		c := newLifecycleTask("c", &log)

		var err error
		if grouped {
			_, err = NewPipeline(a).Append(b).Append(c).Run()
		} else {
			_, err = NewPipeline(a, b, c).Run()
		}
		require.NoError(t, err)
		return log
	}

	assert.Equal(t, run(false), run(true))
}

func TestPipelineEmpty(t *testing.T) {
	_, err := NewPipeline().Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stages")
}

func TestPipelineAppendAndLen(t *testing.T) {
	p := NewPipeline(&plainTask{})
	p.Append(&plainTask{}, &plainTask{})
	assert.Equal(t, 3, p.Len())
}
