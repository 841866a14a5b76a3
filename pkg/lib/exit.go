package lib

import (
	"fmt"
	"os"
)

// Exit prints the error and exits the program with code 1.
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// ExitHint prints the error followed by hint lines, then exits with code 1.
func ExitHint(err error, hints ...string) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if len(hints) > 0 {
		fmt.Fprintln(os.Stderr)
	}
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, "hint:", h)
	}
	os.Exit(1)
}
