package main

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

// executeCommand runs the root command in-process and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeCommandWithStderr(t, args...)
	return stdout, err
}

// executeCommandWithStderr runs the root command in-process. Flag variables
// are package state, so they are reset first.
func executeCommandWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	configPath = ""
	matchUserFile, matchJobFile, matchCompanyFile, matchOutput = "", "", "", ""
	matchVerbose = false
	questionsJSON = false
	seedFile = ""
	servePort = 0
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
