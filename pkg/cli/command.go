package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taskpipe/taskpipe/pkg/console"
	"github.com/taskpipe/taskpipe/pkg/logger"
	"github.com/taskpipe/taskpipe/pkg/stringutil"
	"github.com/taskpipe/taskpipe/pkg/task"
)

var commandLog = logger.New("cli:command")

// ArgsField is the field name under which a command's positional arguments
// are merged into the task.
const ArgsField = "args"

// stateFileFlag is registered on every generated command so callers can
// preload task fields from a file. Flag values still win over file values.
const stateFileFlag = "state-file"

// Spec is the immutable command-line metadata for a task. It is read once
// when the command is built; mutating it afterwards has no effect.
type Spec struct {
	// Name invokes the command. Required; must be a valid command
	// identifier (lowercase letters, digits and dashes).
	Name string

	// Description is the one-line help text. Required.
	Description string

	// Aliases are alternative invocation names, all routed to the same
	// handler.
	Aliases []string

	// Confirm, when non-empty, is shown as a yes/no prompt before the task
	// runs. Declining aborts the command without an error.
	Confirm string
}

// CommandTask is a task that can be invoked as a named command-line command.
type CommandTask interface {
	task.Task

	// CommandSpec returns the command metadata for this task type.
	CommandSpec() Spec
}

// FlagBinder is implemented by command tasks that take flags. Registration
// is cooperative: a task embedding another command task calls the embedded
// type's BindFlags first, so inherited flags are always present.
type FlagBinder interface {
	BindFlags(fs *pflag.FlagSet)
}

// NewCommand builds a cobra command for the task type produced by newTask.
// Each invocation of the command constructs a fresh task, merges the state
// file (if given) and the parsed flag values into it, and runs it.
//
// Merge precedence, lowest to highest: the task constructor's own values,
// then --state-file fields, then flags the user actually set.
func NewCommand(newTask func() CommandTask) (*cobra.Command, error) {
	return newCommand(newTask, nil)
}

func newCommand(newTask func() CommandTask, onRun func(task.Task)) (*cobra.Command, error) {
	if newTask == nil {
		return nil, configErrorf(nil, "task constructor is nil")
	}
	prototype := newTask()
	if prototype == nil {
		return nil, configErrorf(nil, "task constructor returned nil")
	}

	spec := prototype.CommandSpec()
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:     spec.Name,
		Short:   spec.Description,
		Aliases: spec.Aliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandTask(cmd, newTask, args, onRun)
		},
	}

	if binder, ok := prototype.(FlagBinder); ok {
		binder.BindFlags(cmd.Flags())
	}
	cmd.Flags().String(stateFileFlag, "", "Merge task fields from a YAML, JSON or TOML file before flags apply")

	return cmd, nil
}

func validateSpec(spec Spec) error {
	if spec.Name == "" {
		return configErrorf(nil, "command name is empty")
	}
	if !stringutil.IsValidCommandName(spec.Name) {
		return configErrorf([]string{spec.Name}, "command name %q is not a valid identifier", spec.Name)
	}
	if spec.Description == "" {
		return configErrorf([]string{spec.Name}, "command description is empty")
	}
	for _, alias := range spec.Aliases {
		if !stringutil.IsValidCommandName(alias) {
			return configErrorf([]string{spec.Name}, "alias %q is not a valid identifier", alias)
		}
	}
	return nil
}

func runCommandTask(cmd *cobra.Command, newTask func() CommandTask, args []string, onRun func(task.Task)) error {
	t := newTask()
	spec := t.CommandSpec()
	commandLog.Printf("running command %q with %d positional args", spec.Name, len(args))

	fs := cmd.Flags()
	if path, err := fs.GetString(stateFileFlag); err == nil && path != "" {
		fields, err := task.LoadFields(path)
		if err != nil {
			return err
		}
		task.Merge(t, fields, task.MergeOptions{})
	}
	task.Merge(t, &flagNamespace{fs: fs}, task.MergeOptions{})
	if len(args) > 0 {
		task.Merge(t, task.Fields{ArgsField: args}, task.MergeOptions{})
	}

	if spec.Confirm != "" {
		confirmed, err := console.ConfirmAction(spec.Confirm, "Yes, continue", "No, cancel")
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Operation cancelled."))
			return nil
		}
	}

	if err := task.Run(t); err != nil {
		return err
	}
	if onRun != nil {
		onRun(t)
	}
	// Captured failures complete the run; report them without failing the
	// process so callers can inspect the result.
	if resultErr := t.TaskCore().Result.Err; resultErr != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("command %q failed: %v", spec.Name, resultErr)))
	}
	return nil
}

// RunCommand parses argv (os.Args when nil) against a single generated
// command and returns the completed task. Parse failures surface as cobra
// usage errors.
func RunCommand(newTask func() CommandTask, argv []string) (task.Task, error) {
	var completed task.Task
	cmd, err := newCommand(newTask, func(t task.Task) { completed = t })
	if err != nil {
		return nil, err
	}
	if argv == nil {
		argv = os.Args[1:]
	}
	cmd.SetArgs(argv)
	if err := cmd.Execute(); err != nil {
		return completed, err
	}
	return completed, nil
}

// flagNamespace adapts a parsed flag set into a merge source. Only flags the
// user actually set are published, so task defaults survive unless
// overridden on the command line.
type flagNamespace struct {
	fs *pflag.FlagSet
}

func (n *flagNamespace) MergeFields() task.Fields {
	fields := task.Fields{}
	n.fs.Visit(func(f *pflag.Flag) {
		if f.Name == stateFileFlag {
			return
		}
		fields[f.Name] = flagValue(f)
	})
	return fields
}

// flagValue recovers a flag's typed value from its string representation.
func flagValue(f *pflag.Flag) any {
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}
	raw := f.Value.String()
	switch f.Value.Type() {
	case "bool":
		v, err := strconv.ParseBool(raw)
		if err == nil {
			return v
		}
	case "int", "int8", "int16", "int32", "int64":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return int(v)
		}
	case "uint", "uint8", "uint16", "uint32", "uint64":
		v, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			return uint(v)
		}
	case "float32", "float64":
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v
		}
	case "duration":
		v, err := time.ParseDuration(raw)
		if err == nil {
			return v
		}
	}
	return raw
}
