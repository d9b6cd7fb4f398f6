// Package shellcmd deals with the textual side of running a benchmarked
// command: selecting an intermediate shell, substituting {name} parameters,
// tokenizing no-shell argv strings, and quoting values for display.
package shellcmd

import (
	"runtime"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Shell describes how a command line is turned into a child process.
type Shell struct {
	// None disables the intermediate shell entirely (argv-mode execution).
	None bool
	// Program is the shell executable, e.g. "sh", "bash", "cmd".
	Program string
	// ExecFlag is the shell's "execute a string" flag, e.g. "-c" or "/C".
	ExecFlag string
}

// Default returns the platform's default shell.
func Default() Shell {
	if runtime.GOOS == "windows" {
		return Shell{Program: "cmd", ExecFlag: "/C"}
	}
	return Shell{Program: "sh", ExecFlag: "-c"}
}

// NoShell returns the sentinel Shell that disables calibration and spawns
// commands directly via argv.
func NoShell() Shell {
	return Shell{None: true}
}

// Named resolves a user-supplied --shell value to a Shell. An empty name
// resolves to the platform default.
func Named(name string) Shell {
	if name == "" {
		return Default()
	}
	sh := Default()
	sh.Program = name
	return sh
}

// Argv returns the argv vector used to invoke the shell with the given
// command string, e.g. ["sh", "-c", "echo hi"].
func (s Shell) Argv(commandLine string) []string {
	return []string{s.Program, s.ExecFlag, commandLine}
}

// String renders the shell for display/logging purposes.
func (s Shell) String() string {
	if s.None {
		return "<none>"
	}
	return s.Program
}

// QuoteForDisplay quotes a value the way it would need to be quoted to be
// reinserted literally into a shell command line, for log lines and
// "command as executed" fields.
func QuoteForDisplay(value string) string {
	return shellescape.Quote(value)
}

// QuoteArgv renders an argv vector as a single display string, quoting each
// element as needed so the result could be pasted back into a shell and
// reproduce the same argv. Used for --shell=none jobs, which have no
// command-line string of their own.
func QuoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = shellescape.Quote(arg)
	}
	return strings.Join(quoted, " ")
}

// Substitute replaces every occurrence of {name} in template with the bound
// value, for each binding, in a single left-to-right pass. Substitution is
// purely textual: the engine never shell-quotes on behalf of the user
// because the template is itself a shell string (or, in no-shell mode, a
// string that is tokenized after substitution).
//
// A single pass is deliberate: running one strings.ReplaceAll per name in
// sequence would let an earlier substitution's bound value introduce text
// that looks like a later placeholder (e.g. a parameter value containing
// literal "{other}"), which a second pass would then wrongly substitute
// again. Scanning once and skipping past whatever was just written avoids
// this.
func Substitute(template string, bindings map[string]string, order []string) string {
	if len(order) == 0 {
		return template
	}
	var out strings.Builder
	for i := 0; i < len(template); {
		if template[i] == '{' {
			if name, ok := matchPlaceholder(template[i:], order); ok {
				out.WriteString(bindings[name])
				i += len(name) + 2 // "{" + name + "}"
				continue
			}
		}
		out.WriteByte(template[i])
		i++
	}
	return out.String()
}

// matchPlaceholder reports whether s begins with "{name}" for some name in
// order, returning that name.
func matchPlaceholder(s string, order []string) (string, bool) {
	for _, name := range order {
		placeholder := "{" + name + "}"
		if strings.HasPrefix(s, placeholder) {
			return name, true
		}
	}
	return "", false
}
