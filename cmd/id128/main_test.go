package main

import (
	"bytes"
	"encoding/json"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/slashdevops/id128"
)

var (
	testBoot    = id128.MustParse("b00db00db00db00db00db00db00db00d")
	testMachine = id128.MustParse("3ac41e0f9e7c4b5a8d2f1e0c9b8a7f6e")
	testRandom  = id128.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
)

// fakeNative is a deterministic id128.Native without invocation ID.
type fakeNative struct{}

func (fakeNative) BootID() (id128.ID, error)    { return testBoot, nil }
func (fakeNative) MachineID() (id128.ID, error) { return testMachine, nil }
func (fakeNative) RandomID() (id128.ID, error)  { return testRandom, nil }

func (fakeNative) InvocationID() (id128.ID, error) {
	return id128.Null, &id128.NativeError{Func: "sd_id128_get_invocation", Errno: syscall.ENXIO}
}

func (fakeNative) BootIDAppSpecific(app id128.ID) (id128.ID, error) {
	return xor(testBoot, app), nil
}

func (fakeNative) MachineIDAppSpecific(app id128.ID) (id128.ID, error) {
	return xor(testMachine, app), nil
}

func (fakeNative) InvocationIDAppSpecific(id128.ID) (id128.ID, error) {
	return id128.Null, &id128.NativeError{Func: "sd_id128_get_invocation_app_specific", Errno: syscall.ENXIO}
}

func (fakeNative) AppSpecific(base, app id128.ID) (id128.ID, error) { return xor(base, app), nil }

func (fakeNative) FromString(s string) (id128.ID, error) { return id128.Parse(s) }

func (fakeNative) ToString(id id128.ID) (string, error) {
	return id.Text(id128.FormatHex, id128.Lower), nil
}

func xor(a, b id128.ID) id128.ID {
	var out id128.ID
	for i := range out {
		out[i] = a[i] ^ b[i]
	}

	return out
}

// run executes the CLI against fakeNative and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout, _, err := runWithStderr(t, args...)

	return stdout, err
}

// runWithStderr is like run but also returns the log output.
func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&options{native: fakeNative{}})
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestBootCommand(t *testing.T) {
	out, err := run(t, "boot")
	require.NoError(t, err)
	assert.Equal(t, "b00db00d-b00d-b00d-b00d-b00db00db00d\n", out)
}

func TestMachineCommandFormats(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"machine", "--format", "hex"}, "3ac41e0f9e7c4b5a8d2f1e0c9b8a7f6e\n"},
		{[]string{"machine", "-f", "simple", "--upper"}, "3AC4-1E0F-9E7C-4B5A-8D2F-1E0C-9B8A-7F6E\n"},
		{[]string{"machine"}, "3ac41e0f-9e7c-4b5a-8d2f-1e0c9b8a7f6e\n"},
	}

	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestMachineCommandAppSpecific(t *testing.T) {
	app := "00000000-0000-0000-0000-0000000000ff"

	out, err := run(t, "machine", "--app", app, "--format", "hex", "--output", "json")
	require.NoError(t, err)

	var rec idRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "machine", rec.Kind)
	assert.Equal(t, "000000000000000000000000000000ff", rec.App)
	assert.Equal(t, xor(testMachine, id128.MustParse(app)).Text(id128.FormatHex, id128.Lower), rec.ID)
}

func TestInvocationCommandUnavailable(t *testing.T) {
	_, err := run(t, "invocation")
	require.Error(t, err)
	assert.ErrorIs(t, err, id128.ErrUnavailable)
}

func TestRandomCommand(t *testing.T) {
	out, err := run(t, "random", "-n", "2", "--format", "hex")
	require.NoError(t, err)
	assert.Equal(t, "f47ac10b58cc4372a5670e02b2c3d479\nf47ac10b58cc4372a5670e02b2c3d479\n", out)

	_, err = run(t, "random", "-n", "0")
	assert.Error(t, err)
}

func TestRandomCommandReportsVersion(t *testing.T) {
	out, err := run(t, "random", "-o", "json")
	require.NoError(t, err)

	var rec idRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "random", rec.Kind)
	assert.Equal(t, 4, rec.Version)
	assert.Contains(t, out, `"version": 4`)

	out, err = run(t, "random", "-n", "2", "-o", "yaml")
	require.NoError(t, err)

	var recs []idRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, 4, r.Version)
	}
}

func TestBootCommandOmitsVersion(t *testing.T) {
	out, err := run(t, "boot", "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "version")
}

func TestQuietDiscardsLogs(t *testing.T) {
	_, logs, err := runWithStderr(t, "boot", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "ID retrieved")

	out, logs, err := runWithStderr(t, "boot", "--log-level", "debug", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Equal(t, testBoot.String()+"\n", out)
}

func TestShowCommandYAML(t *testing.T) {
	out, err := run(t, "show", "--output", "yaml")
	require.NoError(t, err)

	var recs []idRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)

	assert.Equal(t, "boot", recs[0].Kind)
	assert.Equal(t, testBoot.String(), recs[0].ID)
	assert.Equal(t, testMachine.String(), recs[1].ID)
	assert.Equal(t, "invocation", recs[2].Kind)
	assert.Empty(t, recs[2].ID)
	assert.NotEmpty(t, recs[2].Error)
}

func TestShowCommandText(t *testing.T) {
	out, err := run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "boot:      "+testBoot.String())
	assert.Contains(t, out, "invocation: unavailable (")
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "F47AC10B58CC4372A5670E02B2C3D479", "-o", "json")
	require.NoError(t, err)

	var rec parseRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", rec.RFC)
	assert.Equal(t, "f47ac10b58cc4372a5670e02b2c3d479", rec.Hex)
	assert.Equal(t, "f47a-c10b-58cc-4372-a567-0e02-b2c3-d479", rec.Simple)
	assert.Equal(t, 4, rec.Version)
}

func TestParseCommandModes(t *testing.T) {
	messy := "  f47a-c10b58cc-4372a567-0e02b2c3d479 "

	_, err := run(t, "parse", messy)
	assert.ErrorIs(t, err, id128.ErrInvalidArgument)

	out, err := run(t, "parse", "--lax", messy)
	require.NoError(t, err)
	assert.Contains(t, out, "rfc:     f47ac10b-58cc-4372-a567-0e02b2c3d479\n")

	out, err = run(t, "parse", "--native", "f47ac10b58cc4372a5670e02b2c3d479")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 4\n")

	_, err = run(t, "parse", "--lax", "--native", messy)
	assert.Error(t, err)
}

func TestGlobalFlagValidation(t *testing.T) {
	tests := [][]string{
		{"boot", "--format", "base64"},
		{"boot", "--output", "xml"},
		{"boot", "--log-level", "trace"},
		{"boot", "--log-format", "logfmt"},
		{"boot", "--app", "xyz"},
	}

	for _, args := range tests {
		_, err := run(t, args...)
		assert.Error(t, err, args)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, applicationName+" version: ")

	out, err = run(t, "version", "--long", "-o", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "goVersion")
}

func TestEnvOr(t *testing.T) {
	t.Setenv(envLibrary, "/opt/lib/libsystemd.so.0")
	assert.Equal(t, "/opt/lib/libsystemd.so.0", envOr(envLibrary, id128.DefaultLibrary))

	t.Setenv(envLibrary, "")
	assert.Equal(t, id128.DefaultLibrary, envOr(envLibrary, id128.DefaultLibrary))
}
