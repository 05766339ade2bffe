package cmd

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	if args == nil {
		// nil would make cobra fall back to os.Args, which holds go-test flags.
		args = []string{}
	}
	rootCmd.SetArgs(args)
}

func TestRootRejectsInvalidRole(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"unknown value", "bogus"},
		{"unset value", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONTAINER_ROLE", tt.role)
			resetArgs(t)

			err := rootCmd.Execute()
			require.Error(t, err)
			require.Contains(t, err.Error(), "CONTAINER_ROLE")
			require.Contains(t, err.Error(), "web, worker, scheduler")
		})
	}
}

func TestWaitWithExplicitDepsAgainstListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	t.Setenv("DB_HOST", host)
	t.Setenv("DB_PORT", port)
	t.Setenv("PROBE_STRATEGY", "tcp")
	t.Setenv("PROBE_MAX_ATTEMPTS", "3")
	t.Setenv("PROBE_INTERVAL_SECONDS", "0")
	resetArgs(t, "wait", "--deps", "database")

	require.NoError(t, rootCmd.Execute())
}

func TestWaitRejectsUnknownDependency(t *testing.T) {
	resetArgs(t, "wait", "--deps", "queue")
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown dependency")
}

func TestHealthcheckFailsWhenDependencyUnreachable(t *testing.T) {
	// TEST-NET-1 is guaranteed unroutable; the dial can only time out.
	t.Setenv("CONTAINER_ROLE", "scheduler")
	t.Setenv("REDIS_HOST", "192.0.2.1")
	resetArgs(t, "healthcheck", "--timeout", "200ms")

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache")
}
