package msg

import (
	"fmt"
	"strings"
)

// Sprintfln formats a notice pushed to clients. Notices end with exactly
// one newline.
func Sprintfln(format string, args ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n") + "\n"
}

// Sprintf formats a turn log line, which carries no surrounding space.
func Sprintf(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
