package launch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"siaugesmat-entrypoint/role"
)

func TestReplaceUnknownBinary(t *testing.T) {
	spec := role.LaunchSpec{Path: "no-such-binary-anywhere", Args: []string{"no-such-binary-anywhere"}}
	err := Replace(spec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestSuperviseUnknownBinary(t *testing.T) {
	spec := role.LaunchSpec{Path: "no-such-binary-anywhere", Args: []string{"no-such-binary-anywhere"}}
	_, err := Supervise(spec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestSuperviseReportsChildExitCode(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode int
	}{
		{"clean exit", "exit 0", 0},
		{"failure exit", "exit 7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := role.LaunchSpec{Path: "sh", Args: []string{"sh", "-c", tt.script}}
			code, err := Supervise(spec)
			require.NoError(t, err)
			require.Equal(t, tt.wantCode, code)
		})
	}
}

func TestSuperviseInheritsEnvironment(t *testing.T) {
	t.Setenv("SUPERVISE_ENV_CHECK", "present")
	spec := role.LaunchSpec{Path: "sh", Args: []string{"sh", "-c", `test "$SUPERVISE_ENV_CHECK" = present`}}
	code, err := Supervise(spec)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}
