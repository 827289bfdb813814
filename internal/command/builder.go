// Package command assembles the single command line handed to the host's
// command interpreter: a base command followed by the launcher's forwarded
// arguments, each quoted only when needed.
package command

import "strings"

// Build appends each raw argument to the base command, separated by single
// spaces. Arguments that contain whitespace are wrapped in double quotes so
// the interpreter treats them as one token; everything else passes through
// byte-for-byte.
//
// The quoting is purely textual and deliberately minimal: it protects
// multi-word arguments from word-splitting but does not escape embedded
// quote characters or shell metacharacters. Callers forward arguments as
// received and the setup scripts see them as the user typed them.
func Build(base string, args []string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, arg := range args {
		b.WriteString(" ")
		b.WriteString(Quote(arg))
	}
	return b.String()
}

// Quote wraps arg in double quotes iff it contains whitespace and does not
// already begin with a quote character. Quoting is idempotent: an argument
// that arrives quoted is never quoted again.
func Quote(arg string) string {
	if strings.ContainsAny(arg, " \t") && !strings.HasPrefix(arg, `"`) {
		return `"` + arg + `"`
	}
	return arg
}
