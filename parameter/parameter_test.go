package parameter

import (
	"testing"

	"github.com/hyperfine-go/hyperfine/shellcmd"
	"github.com/stretchr/testify/require"
)

func TestNewListSource(t *testing.T) {
	src, err := NewListSource("n", "1,2,3")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, src.Values)
}

func TestNewScanSourceInteger(t *testing.T) {
	src, err := NewScanSource("n", "0", "10", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "3", "6", "9"}, src.Values)
}

func TestNewScanSourceDecimal(t *testing.T) {
	src, err := NewScanSource("d", "0", "1", "0.33")
	require.NoError(t, err)
	require.Equal(t, []string{"0.00", "0.33", "0.66", "0.99"}, src.Values)
}

func TestNewScanSourceDefaultStep(t *testing.T) {
	src, err := NewScanSource("n", "1", "3", "")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, src.Values)
}

func TestNewScanSourceEmptyRange(t *testing.T) {
	_, err := NewScanSource("n", "11", "10", "1")
	require.Error(t, err)
	require.Equal(t, EmptyRange, err.(*Error).Kind)
}

func TestNewScanSourceZeroStep(t *testing.T) {
	_, err := NewScanSource("n", "0", "10", "0")
	require.Error(t, err)
	require.Equal(t, ZeroStep, err.(*Error).Kind)
}

func TestNewScanSourceTooLarge(t *testing.T) {
	_, err := NewScanSource("n", "0", "100001", "1")
	require.Error(t, err)
	require.Equal(t, TooLarge, err.(*Error).Kind)
}

func TestExpandNoSources(t *testing.T) {
	points := Expand(nil)
	require.Len(t, points, 1)
	require.Empty(t, points[0].Bindings)
}

func TestExpandCartesianOrder(t *testing.T) {
	a, _ := NewListSource("a", "1,2")
	b, _ := NewListSource("b", "x,y")
	points := Expand([]Source{a, b})
	require.Len(t, points, 4)

	var got [][2]string
	for _, p := range points {
		got = append(got, [2]string{p.Bindings["a"], p.Bindings["b"]})
	}
	require.Equal(t, [][2]string{{"1", "x"}, {"2", "x"}, {"1", "y"}, {"2", "y"}}, got)
}

func TestFindDuplicateName(t *testing.T) {
	a, _ := NewListSource("n", "1")
	b, _ := NewListSource("n", "2")
	require.Equal(t, "n", FindDuplicateName([]Source{a, b}))

	c, _ := NewListSource("m", "1")
	require.Equal(t, "", FindDuplicateName([]Source{a, c}))
}

func TestBuildJobsSingleParameterList(t *testing.T) {
	n, err := NewListSource("n", "1,2,3")
	require.NoError(t, err)

	jobs := BuildJobs(
		[]CommandSpec{{CommandLine: "echo {n}"}},
		[]Source{n},
		nil,
		shellcmd.Default(),
	)

	require.Len(t, jobs, 3)
	require.Equal(t, []string{"echo 1", "echo 2", "echo 3"}, []string{
		jobs[0].DisplayName, jobs[1].DisplayName, jobs[2].DisplayName,
	})
	require.Equal(t, "1", jobs[0].Parameters["n"])
}

func TestBuildJobsCommandIndexInnermost(t *testing.T) {
	n, err := NewListSource("n", "1,2")
	require.NoError(t, err)

	jobs := BuildJobs(
		[]CommandSpec{{CommandLine: "a {n}"}, {CommandLine: "b {n}"}},
		[]Source{n},
		nil,
		shellcmd.Default(),
	)

	require.Len(t, jobs, 4)
	require.Equal(t, []string{"a 1", "b 1", "a 2", "b 2"}, []string{
		jobs[0].DisplayName, jobs[1].DisplayName, jobs[2].DisplayName, jobs[3].DisplayName,
	})
}

func TestBuildJobsCommandNameTemplate(t *testing.T) {
	n, err := NewListSource("n", "1,2")
	require.NoError(t, err)

	jobs := BuildJobs(
		[]CommandSpec{{CommandLine: "echo {n}"}},
		[]Source{n},
		[]string{"run-{n}"},
		shellcmd.Default(),
	)

	require.Equal(t, "run-1", jobs[0].DisplayName)
	require.Equal(t, "run-2", jobs[1].DisplayName)
}

func TestBuildJobsNoShellTokenizesArgv(t *testing.T) {
	jobs := BuildJobs(
		[]CommandSpec{{CommandLine: `echo "hello world"`}},
		nil,
		nil,
		shellcmd.NoShell(),
	)

	require.Len(t, jobs, 1)
	require.Equal(t, []string{"echo", "hello world"}, jobs[0].Argv)
}
