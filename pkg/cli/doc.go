// Package cli binds tasks to named command-line commands and assembles
// trees of subcommands using the Cobra command framework.
//
// A task becomes invocable from the command line by implementing
// CommandTask: its Spec supplies the command name, description and aliases,
// and an optional FlagBinder implementation registers flags. Parsed flag
// values, --state-file fields and positional arguments are merged into a
// fresh task instance before it runs.
//
// # Single commands
//
//	completed, err := cli.RunCommand(func() cli.CommandTask { return &CatTask{} }, os.Args[1:])
//
// # Command trees
//
// Multi-command programs declare an explicit tree of Leaf and Group nodes
// and hand it to NewParser:
//
//	root := &cobra.Command{Use: "vcs"}
//	root, err := cli.NewParser(root, []cli.Node{
//		cli.Group{Name: "remote", Description: "Manage remotes", Children: []cli.Node{
//			cli.Leaf{New: newAddTask},
//			cli.Leaf{New: newRemoveTask},
//		}},
//		cli.Leaf{New: newStatusTask},
//	})
//
// which yields the command paths "vcs remote add", "vcs remote rm" and
// "vcs status". Aliases registered in a leaf's Spec route to the same
// handler as the primary name.
//
// # Error handling
//
// Malformed trees (nil leaves, invalid names, duplicates within one level)
// fail at build time with a *ConfigError naming the offending entry; they
// are programming errors, never user errors. Unknown commands and invalid
// flags are reported by cobra as usage errors at parse time.
//
// # Related packages
//
// pkg/task - The lifecycle engine commands delegate to
//
// pkg/console - Output formatting utilities
//
// pkg/logger - Debug logging controlled by the DEBUG environment variable
package cli
