package testutils

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// UnreachableURL returns an http URL on localhost nothing listens on.
// The port was free when picked: connections to it are refused.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "Setup: failed to listen on tcp")
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	require.True(t, ok, "Setup: expected TCPAddr")

	return fmt.Sprintf("http://127.0.0.1:%d", addr.Port)
}
