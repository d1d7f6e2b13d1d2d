package domain

import "strings"

// Command is an external process run on behalf of the user.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command the way it is echoed before running it.
func (c Command) String() string {
	return "$ " + strings.Join(c.Args, " ")
}
