package parameter

import (
	"github.com/hyperfine-go/hyperfine/bench"
	"github.com/hyperfine-go/hyperfine/shellcmd"
)

// CommandSpec is one user-supplied command template, already broadcast to
// its final per-template prepare/conclude/stream policy by the config
// layer (which enforces the "repeated once or exactly once per command"
// rule).
type CommandSpec struct {
	CommandLine string
	Prepare     string
	Conclude    string
	Input       shellcmd.InputPolicy
	Output      shellcmd.OutputPolicy
}

// BuildJobs expands commands × Expand(sources) into concrete bench.Jobs, in
// command-index-innermost order: for a fixed parameter point, every command
// template runs before the point advances. commandNames supplies optional
// --command-name templates; it must have been validated upstream to have
// length 0, 1, or exactly len(commands)*Count(sources).
func BuildJobs(commands []CommandSpec, sources []Source, commandNames []string, shell shellcmd.Shell) []bench.Job {
	points := Expand(sources)

	jobs := make([]bench.Job, 0, len(commands)*len(points))
	index := 0
	for _, point := range points {
		for _, spec := range commands {
			line := shellcmd.Substitute(spec.CommandLine, point.Bindings, point.Order)
			prepare := shellcmd.Substitute(spec.Prepare, point.Bindings, point.Order)
			conclude := shellcmd.Substitute(spec.Conclude, point.Bindings, point.Order)

			job := bench.Job{
				Index:          index,
				CommandLine:    line,
				Shell:          shell,
				Parameters:     point.Bindings,
				ParameterOrder: point.Order,
				Prepare:        prepare,
				Conclude:       conclude,
				Input:          spec.Input,
				Output:         spec.Output,
			}

			if shell.None {
				argv, err := shellcmd.Tokenize(line)
				if err != nil {
					argv = []string{line}
				}
				job.Argv = argv
			}

			job.DisplayName = displayName(commandNames, index, point, line)

			jobs = append(jobs, job)
			index++
		}
	}
	return jobs
}

func displayName(commandNames []string, index int, point Point, substituted string) string {
	switch len(commandNames) {
	case 0:
		return substituted
	case 1:
		return shellcmd.Substitute(commandNames[0], point.Bindings, point.Order)
	default:
		if index < len(commandNames) {
			return shellcmd.Substitute(commandNames[index], point.Bindings, point.Order)
		}
		return shellcmd.Substitute(commandNames[0], point.Bindings, point.Order)
	}
}
