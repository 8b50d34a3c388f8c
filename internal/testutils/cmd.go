// Package testutils provides helper functions for testing
package testutils

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CmdTestCase is a test case for testing cobra CMD flags.
type CmdTestCase struct {
	Name           string
	Short          string
	Default        string
	Filename       bool
	PersistentFlag bool
	BaseCmd        *cobra.Command
}

// FlagTestHelper is a helper function to test cobra CMD flags.
func FlagTestHelper(t *testing.T, testCase CmdTestCase) {
	t.Helper()
	var flag *pflag.Flag

	if testCase.PersistentFlag {
		flag = testCase.BaseCmd.PersistentFlags().Lookup(testCase.Name)
	} else {
		flag = testCase.BaseCmd.Flags().Lookup(testCase.Name)
	}
	require.NotNil(t, flag, "Flag %q should exist", testCase.Name)
	assert.Equal(t, testCase.Short, flag.Shorthand, "Flag %q has an unexpected shorthand", testCase.Name)
	assert.Equal(t, testCase.Default, flag.DefValue, "Flag %q has an unexpected default value", testCase.Name)

	if testCase.Filename {
		assert.NotNil(t, flag.Annotations[cobra.BashCompFilenameExt], "Flag %q should complete file names", testCase.Name)
	} else {
		assert.Nil(t, flag.Annotations[cobra.BashCompFilenameExt], "Flag %q should not complete file names", testCase.Name)
	}
}
