package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskpipe/taskpipe/pkg/logger"
	"github.com/taskpipe/taskpipe/pkg/stringutil"
)

var treeLog = logger.New("cli:tree")

// Node is one entry in a command tree: either a Leaf bound to a task or a
// Group of nested nodes. The interface is sealed; no other node kinds exist.
type Node interface {
	node()
}

// Leaf attaches a command task as a subcommand. Its name and aliases come
// from the task's Spec, and every alias routes to the same handler.
type Leaf struct {
	// New constructs a fresh task for each invocation.
	New func() CommandTask
}

func (Leaf) node() {}

// Group attaches an intermediate subcommand whose children are nested one
// level deeper, e.g. the "remote" in "prog remote add".
type Group struct {
	Name        string
	Description string
	Children    []Node
}

func (Group) node() {}

// NewParser assembles a command tree onto the root command and returns it.
// The tree is validated before anything is attached: nil leaves, invalid or
// empty names and duplicate command/alias strings within one level all
// return a *ConfigError identifying the offending entry. Unknown commands
// and bad flags at parse time remain cobra usage errors.
func NewParser(root *cobra.Command, nodes []Node) (*cobra.Command, error) {
	if root == nil {
		return nil, configErrorf(nil, "root command is nil")
	}
	treeLog.Printf("assembling parser with %d top-level nodes", len(nodes))
	if err := attachNodes(root, nodes, nil); err != nil {
		return nil, err
	}
	return root, nil
}

func attachNodes(parent *cobra.Command, nodes []Node, path []string) error {
	// Track every invocation name registered at this level; commands and
	// aliases share one namespace per subparser scope.
	owners := map[string]string{}
	claim := func(name, owner string) error {
		if prev, taken := owners[name]; taken {
			return configErrorf(append(path, name), "duplicate command or alias %q (already registered by %s)", name, prev)
		}
		owners[name] = owner
		return nil
	}

	for i, n := range nodes {
		switch entry := n.(type) {
		case Leaf:
			cmd, err := leafCommand(entry, path, i)
			if err != nil {
				return err
			}
			for _, name := range append([]string{cmd.Name()}, cmd.Aliases...) {
				if err := claim(name, "command "+cmd.Name()); err != nil {
					return err
				}
			}
			parent.AddCommand(cmd)
		case Group:
			if entry.Name == "" {
				return configErrorf(path, "group at index %d has an empty name", i)
			}
			if !stringutil.IsValidCommandName(entry.Name) {
				return configErrorf(append(path, entry.Name), "group name %q is not a valid identifier", entry.Name)
			}
			if len(entry.Children) == 0 {
				return configErrorf(append(path, entry.Name), "group %q has no children", entry.Name)
			}
			if err := claim(entry.Name, "group "+entry.Name); err != nil {
				return err
			}
			// NoArgs turns an unrecognized token at this level into an
			// "unknown command" usage error instead of cobra's silent help.
			groupCmd := &cobra.Command{
				Use:   entry.Name,
				Short: entry.Description,
				Args:  cobra.NoArgs,
			}
			if err := attachNodes(groupCmd, entry.Children, append(path, entry.Name)); err != nil {
				return err
			}
			parent.AddCommand(groupCmd)
		case nil:
			return configErrorf(path, "node at index %d is nil", i)
		default:
			return configErrorf(path, "node at index %d has unsupported type %T", i, n)
		}
	}
	return nil
}

func leafCommand(leaf Leaf, path []string, index int) (*cobra.Command, error) {
	if leaf.New == nil {
		return nil, configErrorf(path, "leaf at index %d has a nil task constructor", index)
	}
	cmd, err := NewCommand(leaf.New)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Path = append(append([]string{}, path...), cfgErr.Path...)
			return nil, cfgErr
		}
		return nil, err
	}
	treeLog.Printf("attached leaf %q at %v", cmd.Name(), path)
	return cmd, nil
}
