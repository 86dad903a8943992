// Package stringutil provides string helpers shared across the framework.
package stringutil

import "strings"

// IsValidCommandName reports whether name can be used as a command or alias
// on the command line. Valid names start with a lowercase letter and contain
// only lowercase letters, digits and dashes, with no trailing dash, so they
// never collide with flag syntax or read as shell noise.
//
// Examples:
//
//	IsValidCommandName("status")      // returns true
//	IsValidCommandName("remote-add")  // returns true
//	IsValidCommandName("2fast")       // returns false (leading digit)
//	IsValidCommandName("--force")     // returns false
//	IsValidCommandName("Remote")      // returns false (uppercase)
func IsValidCommandName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return !strings.HasSuffix(name, "-")
}
