package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"gpacalc"}, args...))
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) cli.ExitCoder {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	assert.Equal(t, code, exitErr.ExitCode())
	return exitErr
}

func TestCalcWithPriorRecord(t *testing.T) {
	out, err := run(t, "calc",
		"--subject", "Databases:BB:3",
		"--subject", "Networks:CC:3",
		"--previous-gpa", "3.0",
		"--previous-units", "30",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Databases")
	assert.Contains(t, out, "BB (3)")
	assert.Contains(t, out, "Semester GPA:")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "2.92")
	assert.Contains(t, out, "36")
}

func TestCalcWithoutPriorRecord(t *testing.T) {
	out, err := run(t, "calc", "-s", "Algorithms:AA:3")

	require.NoError(t, err)
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "12.00")
}

func TestCalcLocalizesLabels(t *testing.T) {
	out, err := run(t, "--lang", "ar", "calc", "-s", "Math:AA:3:retake")

	require.NoError(t, err)
	assert.Contains(t, out, "معادة")
	assert.Contains(t, out, "المعدل التراكمي")
}

func TestCalcRejectsUnknownGrade(t *testing.T) {
	_, err := run(t, "calc", "-s", "Math:ZZ:3")

	exitErr := requireExitCode(t, err, 2)
	assert.Equal(t, "Please choose a grade from the scale", exitErr.Error())
}

func TestCalcRejectsPriorRecordOutOfRange(t *testing.T) {
	_, err := run(t, "calc", "-s", "Math:AA:3", "--previous-gpa", "4.5")
	exitErr := requireExitCode(t, err, 2)
	assert.Equal(t, "Previous cumulative GPA must be between 0 and 4", exitErr.Error())

	_, err = run(t, "calc", "-s", "Math:AA:3", "--previous-units", "-1")
	exitErr = requireExitCode(t, err, 2)
	assert.Equal(t, "Previous units must be greater than or equal to 0", exitErr.Error())

	for _, units := range []string{"10001", "99999999999999999999"} {
		_, err = run(t, "calc", "-s", "Math:AA:3", "--previous-units", units)
		exitErr = requireExitCode(t, err, 2)
		assert.Equal(t, "Previous units must not exceed 10000", exitErr.Error(), units)
	}
}

func TestCalcRejectsTooManySubjectUnits(t *testing.T) {
	_, err := run(t, "calc", "-s", "Math:AA:101")

	exitErr := requireExitCode(t, err, 2)
	assert.Equal(t, "Units must not exceed 100", exitErr.Error())
}

func TestCalcRequiresSubjects(t *testing.T) {
	_, err := run(t, "calc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject")
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale")

	require.NoError(t, err)
	assert.Contains(t, out, "Grade scale")
	assert.Contains(t, out, "AA")
	assert.Contains(t, out, "3.5")
}

func TestCustomScaleFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grading:
  scale:
    - { symbol: P, points: 4 }
    - { symbol: NP, points: 0 }
`), 0o600))

	out, err := run(t, "--config", path, "calc", "-s", "Seminar:P:2", "-s", "Lab:NP:2")
	require.NoError(t, err)
	assert.Contains(t, out, "2.00")

	_, err = run(t, "--config", path, "calc", "-s", "Seminar:AA:2")
	requireExitCode(t, err, 2)
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "scale")

	require.Error(t, err)
}
