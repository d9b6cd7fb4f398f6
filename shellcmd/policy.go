package shellcmd

// InputKind selects how a benchmarked command's stdin is wired.
type InputKind int

const (
	// InputInherit connects the child's stdin to the parent's.
	InputInherit InputKind = iota
	// InputNull connects the child's stdin to the null device.
	InputNull
	// InputFile opens a named file in read mode.
	InputFile
)

// InputPolicy configures a command's standard input.
type InputPolicy struct {
	Kind InputKind
	Path string // only meaningful when Kind == InputFile
}

// OutputKind selects how a benchmarked command's stdout (and, by default,
// stderr) is wired.
type OutputKind int

const (
	// OutputDiscard connects standard output to the null device. This is
	// the default.
	OutputDiscard OutputKind = iota
	// OutputInherit connects standard output to the parent's.
	OutputInherit
	// OutputPipe reads the child's output to EOF and drops it, draining
	// concurrently with the wait so a full pipe buffer never deadlocks
	// the child.
	OutputPipe
	// OutputFile opens a named file in write/truncate mode.
	OutputFile
)

// OutputPolicy configures a command's standard output and (unless the
// configuration distinguishes them) standard error.
type OutputPolicy struct {
	Kind OutputKind
	Path string // only meaningful when Kind == OutputFile
}

// ParseInput parses a --input flag value ("null" or a file path).
func ParseInput(value string) InputPolicy {
	if value == "" || value == "null" {
		return InputPolicy{Kind: InputNull}
	}
	return InputPolicy{Kind: InputFile, Path: value}
}

// ParseOutput parses an --output flag value ("null", "pipe", "inherit", or
// a file path).
func ParseOutput(value string) OutputPolicy {
	switch value {
	case "", "null":
		return OutputPolicy{Kind: OutputDiscard}
	case "pipe":
		return OutputPolicy{Kind: OutputPipe}
	case "inherit":
		return OutputPolicy{Kind: OutputInherit}
	default:
		return OutputPolicy{Kind: OutputFile, Path: value}
	}
}
