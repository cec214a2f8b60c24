package oxa

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/oxa/environment"
	"github.com/akashmaji946/oxa/oerrors"
)

func TestRun_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		Name     string
		Source   string
		Expected string
	}{
		{"addition", `print 1 + 2;`, "3\n"},
		{"string concatenation", `print "str" + 10;`, "str10\n"},
		{"truncating division", `print 10 / 3;`, "3\n"},
		{"let reassignment", `let a = 1; a = a + 4; print a;`, "5\n"},
	}

	for _, tt := range tests {
		var out, diag bytes.Buffer
		err := Run(tt.Source, &out, &diag)
		assert.NoError(t, err, tt.Name)
		assert.Equal(t, tt.Expected, out.String(), tt.Name)
	}
}

func TestRun_UnrecognizedCharacterMapsToInvalidTokenKeyExitCode(t *testing.T) {
	var out, diag bytes.Buffer
	err := Run(`print 1 @ 2;`, &out, &diag)
	assert.Error(t, err)
	assert.Equal(t, 4, oerrors.ExitCode(err))
}

func TestRun_ParserFailureMapsToExitCodeThree(t *testing.T) {
	var out, diag bytes.Buffer
	err := Run(`print ;`, &out, &diag)
	assert.Error(t, err)
	assert.Equal(t, 3, oerrors.ExitCode(err))
}

func TestRun_RuntimeFailureMapsToExitCodeTwo(t *testing.T) {
	var out, diag bytes.Buffer
	err := Run(`print 1 / 0;`, &out, &diag)
	assert.Error(t, err)
	assert.Equal(t, 2, oerrors.ExitCode(err))
}

func TestRunFile_MissingFileMapsToFileErrorExitCodeTen(t *testing.T) {
	var out, diag bytes.Buffer
	err := RunFile("/nonexistent/path/to/source.oxa", &out, &diag)
	assert.Error(t, err)
	assert.Equal(t, 10, oerrors.ExitCode(err))
}

func TestRunWithEnvironment_PersistsAcrossCalls(t *testing.T) {
	env := environment.New()

	var out1, diag bytes.Buffer
	assert.NoError(t, RunWithEnvironment(`let count = 1;`, env, &out1, &diag))

	var out2 bytes.Buffer
	assert.NoError(t, RunWithEnvironment(`count = count + 1; print count;`, env, &out2, &diag))
	assert.Equal(t, "2\n", out2.String())
}
