package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(verbose bool) (*ConsoleFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	f := NewConsoleFormatter(
		WithWriter(&out),
		WithErrorWriter(&errOut),
		WithVerbose(verbose),
		WithNoColor(true),
	)
	return f, &out, &errOut
}

func TestNew(t *testing.T) {
	f, err := New("console")
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, f)

	f, err = New("JSON")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	_, err = New("xml")
	assert.Error(t, err)
}

func TestConsoleFormatNames(t *testing.T) {
	f, out, _ := newConsole(false)
	f.FormatNames("requests", []string{"health", "users/get"})
	assert.Equal(t, "health\nusers/get\n", out.String())
}

func TestConsoleFormatExecution(t *testing.T) {
	t.Run("text is written verbatim with a trailing newline", func(t *testing.T) {
		f, out, errOut := newConsole(false)
		f.FormatExecution(&Execution{Request: "health", Text: "GET /health"})

		assert.Equal(t, "GET /health\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("existing newline kept", func(t *testing.T) {
		f, out, _ := newConsole(false)
		f.FormatExecution(&Execution{Request: "health", Text: "GET /health\n"})
		assert.Equal(t, "GET /health\n", out.String())
	})

	t.Run("verbose header goes to stderr", func(t *testing.T) {
		f, out, errOut := newConsole(true)
		f.FormatExecution(&Execution{Request: "health", Environment: "dev", Text: "GET /", Duration: time.Millisecond})

		assert.Equal(t, "GET /\n", out.String())
		assert.Contains(t, errOut.String(), "health")
		assert.Contains(t, errOut.String(), "dev")
	})
}

func TestConsoleFormatInspection(t *testing.T) {
	f, out, _ := newConsole(false)
	f.FormatInspection(&catalog.Inspection{
		Request: "users/get",
		Path:    "/repo/users/get.http",
		Keys:    []string{"host", "token"},
		Coverage: []catalog.Coverage{
			{Environment: "dev"},
			{Environment: "prod", Missing: []string{"token"}},
			{Environment: "bad", Err: errors.New("cannot parse")},
		},
	})

	s := out.String()
	assert.Contains(t, s, "- host")
	assert.Contains(t, s, "✓ dev")
	assert.Contains(t, s, "! prod missing: token")
	assert.Contains(t, s, "✗ bad: cannot parse")
}

func TestConsoleFormatValidation(t *testing.T) {
	f, out, _ := newConsole(false)
	f.FormatValidation([]catalog.CheckResult{
		{Kind: catalog.KindRequest, Name: "ok"},
		{Kind: catalog.KindEnvironment, Name: "bad", Err: errors.New("boom")},
	})

	s := out.String()
	assert.NotContains(t, s, "request ok")
	assert.Contains(t, s, "✗ environment bad: boom")
	assert.Contains(t, s, "2 checked, 1 invalid")
}

func TestConsoleFormatHistory(t *testing.T) {
	f, out, _ := newConsole(false)
	f.FormatHistory(nil)
	assert.Equal(t, "no executions recorded\n", out.String())

	out.Reset()
	f.FormatHistory([]history.Entry{
		{Request: "health", Status: history.StatusOK, CreatedAt: time.Now()},
		{Request: "users/get", Environment: "prod", Status: history.StatusError, Error: "missing", CreatedAt: time.Now()},
	})
	assert.Contains(t, out.String(), "health")
	assert.Contains(t, out.String(), "error")
	assert.NotContains(t, out.String(), "missing")
}

func TestConsoleFormatError(t *testing.T) {
	f, _, errOut := newConsole(false)
	f.FormatError(errors.New("request not found: x"))
	assert.Equal(t, "Error: request not found: x\n", errOut.String())
}

func TestJSONFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewJSONFormatter(WithWriter(&out), WithErrorWriter(&errOut))

	t.Run("names", func(t *testing.T) {
		out.Reset()
		f.FormatNames("environments", nil)

		var got JSONNames
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "environments", got.Kind)
		assert.NotNil(t, got.Names)
	})

	t.Run("execution", func(t *testing.T) {
		out.Reset()
		f.FormatExecution(&Execution{Request: "health", Environment: "dev", Text: "GET /", Duration: 1500 * time.Microsecond})

		var got JSONExecution
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "GET /", got.Text)
		assert.Equal(t, 1.5, got.Duration)
	})

	t.Run("inspection", func(t *testing.T) {
		out.Reset()
		f.FormatInspection(&catalog.Inspection{
			Request:  "health",
			Coverage: []catalog.Coverage{{Environment: "dev"}, {Environment: "prod", Missing: []string{"host"}}},
		})

		var got JSONInspection
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []string{}, got.Placeholders)
		require.Len(t, got.Environments, 2)
		assert.True(t, got.Environments[0].Complete)
		assert.False(t, got.Environments[1].Complete)
	})

	t.Run("validation", func(t *testing.T) {
		out.Reset()
		f.FormatValidation([]catalog.CheckResult{
			{Kind: catalog.KindRequest, Name: "a"},
			{Kind: catalog.KindRequest, Name: "b", Err: errors.New("bad")},
		})

		var got JSONValidation
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.False(t, got.Valid)
		assert.Equal(t, "bad", got.Results[1].Error)
	})

	t.Run("error", func(t *testing.T) {
		f.FormatError(errors.New("nope"))

		var got JSONError
		require.NoError(t, json.Unmarshal(errOut.Bytes(), &got))
		assert.Equal(t, "nope", got.Error)
	})
}
