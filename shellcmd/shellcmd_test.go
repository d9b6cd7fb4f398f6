package shellcmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeSplitsOnWhitespaceRespectingQuotes(t *testing.T) {
	tokens, err := Tokenize(`echo "hello world" 'and more'`)
	require.NoError(t, err)
	require.Equal(t, []string{"echo", "hello world", "and more"}, tokens)
}

func TestTokenizeRejectsUnbalancedQuote(t *testing.T) {
	_, err := Tokenize(`echo "unterminated`)
	require.Error(t, err)
}

func TestTokenizeEmptyString(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestNamedDefaultsToPlatformShell(t *testing.T) {
	sh := Named("")
	require.Equal(t, Default().Program, sh.Program)
	require.False(t, sh.None)
}

func TestNamedOverridesProgram(t *testing.T) {
	sh := Named("zsh")
	require.Equal(t, "zsh", sh.Program)
	require.False(t, sh.None)
}

func TestNoShellDisablesCalibration(t *testing.T) {
	sh := NoShell()
	require.True(t, sh.None)
}

func TestShellArgv(t *testing.T) {
	sh := Shell{Program: "sh", ExecFlag: "-c"}
	require.Equal(t, []string{"sh", "-c", "echo hi"}, sh.Argv("echo hi"))
}

func TestQuoteArgvQuotesWhitespace(t *testing.T) {
	quoted := QuoteArgv([]string{"echo", "hello world"})
	require.Contains(t, quoted, "hello world")
	require.NotEqual(t, "echo hello world", quoted)
}

func TestParseInputDefaultsToNull(t *testing.T) {
	require.Equal(t, InputPolicy{Kind: InputNull}, ParseInput(""))
}

func TestParseInputFilePath(t *testing.T) {
	require.Equal(t, InputPolicy{Kind: InputFile, Path: "data.txt"}, ParseInput("data.txt"))
}

func TestSubstituteReplacesEveryBinding(t *testing.T) {
	out := Substitute("echo {a} {b}", map[string]string{"a": "1", "b": "2"}, []string{"a", "b"})
	require.Equal(t, "echo 1 2", out)
}

func TestSubstituteDoesNotReSubstituteIntoBoundValues(t *testing.T) {
	// The value bound to "a" contains literal "{b}"; a second pass over the
	// output would wrongly expand it. A single left-to-right scan must not.
	out := Substitute("echo {a}", map[string]string{"a": "{b}", "b": "2"}, []string{"a", "b"})
	require.Equal(t, "echo {b}", out)
}

func TestSubstituteNoPlaceholdersIsIdentity(t *testing.T) {
	require.Equal(t, "echo hi", Substitute("echo hi", nil, nil))
}

func TestParseOutputVariants(t *testing.T) {
	require.Equal(t, OutputPolicy{Kind: OutputDiscard}, ParseOutput(""))
	require.Equal(t, OutputPolicy{Kind: OutputPipe}, ParseOutput("pipe"))
	require.Equal(t, OutputPolicy{Kind: OutputInherit}, ParseOutput("inherit"))
	require.Equal(t, OutputPolicy{Kind: OutputFile, Path: "out.log"}, ParseOutput("out.log"))
}
