/*
Copyright © 2025 The taxflor authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRunCmd_Exists verifies getRunCmd returns a valid command.
func TestGetRunCmd_Exists(t *testing.T) {
	cmd := getRunCmd()
	require.NotNil(t, cmd, "Run command should exist")
	assert.Equal(t, "run", cmd.Use,
		"Command name should be run")
	assert.Contains(t, cmd.Aliases, "enrich",
		"enrich should alias run")
}

// TestGetRunCmd_Descriptions verifies short and long descriptions.
func TestGetRunCmd_Descriptions(t *testing.T) {
	cmd := getRunCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Long, "champs_additionnels",
		"Long description should mention the embedded-fields column")
	assert.Contains(t, cmd.Long, "corrections.yaml",
		"Long description should mention the correction table")
}

// TestGetRunCmd_Flags verifies the flag set.
func TestGetRunCmd_Flags(t *testing.T) {
	cmd := getRunCmd()

	for _, name := range []string{
		"columns", "precision", "source-dir",
		"out-dir", "out-file", "format",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"Flag %s should exist", name)
	}

	assert.Equal(t, "c", cmd.Flags().Lookup("columns").Shorthand)
	assert.Equal(t, "p", cmd.Flags().Lookup("precision").Shorthand)
}

// TestGetRunCmd_HasRunE verifies run function is set.
func TestGetRunCmd_HasRunE(t *testing.T) {
	cmd := getRunCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetRunCmd_IndependentInstances verifies each call returns an
// independent instance.
func TestGetRunCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRunCmd()
	cmd2 := getRunCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")

	cmd1.Short = "test1"
	cmd2.Short = "test2"

	assert.Equal(t, "test1", cmd1.Short)
	assert.Equal(t, "test2", cmd2.Short)
}

// TestRootCmd_VersionTemplate verifies the version flag is remapped
// to -V and the automatic prefix is removed.
func TestRootCmd_VersionTemplate(t *testing.T) {
	assert.Equal(t, "{{.Version}}\n", rootCmd.VersionTemplate())
	assert.NotNil(t, rootCmd.Flags().Lookup("version"))
	assert.Equal(t, "V", rootCmd.Flags().Lookup("version").Shorthand)
}
