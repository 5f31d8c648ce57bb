package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	for _, backend := range []string{"heap", "offheap"} {
		t.Run(backend, func(t *testing.T) {
			resetFlags(t)

			out, err := captureOutput(t, func() error { return runDemo(backend) })
			require.NoError(t, err)
			require.Contains(t, out, "Backend: "+backend)
			require.Contains(t, out, "[integer] read(k)")
			require.Contains(t, out, "[record] k.sum()")
			require.NotContains(t, out, "FAIL")
		})
	}
}

func TestDemoCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	t.Cleanup(func() { resetFlags(t) })

	out, err := captureOutput(t, func() error { return runDemo("heap") })
	require.NoError(t, err)
	assertJSON(t, out)

	var obs []observation
	require.NoError(t, json.Unmarshal([]byte(out), &obs))
	require.Len(t, obs, 12)
	for _, o := range obs {
		require.True(t, o.OK, "%s/%s: got %s want %s", o.Scenario, o.Step, o.Got, o.Want)
	}
}

func TestDemoCommand_UnknownBackend(t *testing.T) {
	resetFlags(t)
	err := runDemo("disk")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown backend"))
}
