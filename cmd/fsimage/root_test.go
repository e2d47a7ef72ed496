package fsimage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_NoCommand(t *testing.T) {
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, MsgErrNoCommand, err.Error())
	assert.Contains(t, out.String(), "USAGE:")
	assert.Contains(t, out.String(), "query")
}

func TestRootCmd_Flags(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"verbose", "config", "format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestTemplateFormatting(t *testing.T) {
	// Tests do not run on a terminal, so no escape codes are added
	assert.Equal(t, "USAGE:", formatBoldUpper("Usage:"))
	assert.Equal(t, "Usage:", formatBold("Usage:"))
	assert.Equal(t, "FLAGS", formatUpper("flags"))
}

func TestHelpTopics(t *testing.T) {
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)

	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())
	for _, name := range []string{"configuration", "modules", "query-syntax"} {
		assert.Contains(t, out.String(), "  "+name+"\n")
	}

	out.Reset()
	rootCmd = NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"help", "query-syntax"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "DUPLICATE_ADDITION")
}
