package utils

import (
	"strings"
)

const shellSpecialChars = " \t\n\"'\\$`|&;<>()*?[]#~{}!"

// QuoteShellArg double quotes arg when a POSIX shell would otherwise split or
// expand it.
func QuoteShellArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, shellSpecialChars) {
		return arg
	}

	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

	return `"` + replacer.Replace(arg) + `"`
}

// JoinShellArgs renders args as a single shell command line.
func JoinShellArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, QuoteShellArg(arg))
	}

	return strings.Join(quoted, " ")
}
