package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/ansible-launcher/internal/config"
)

func TestRunMain_FatalErrorExitsOne(t *testing.T) {
	origExecute := executeFunc
	executeFunc = func([]string, io.Reader, io.Writer, io.Writer) error {
		return errors.New("missing config file /etc/awl/config.toml")
	}
	t.Cleanup(func() { executeFunc = origExecute })

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"awl"}, nil, io.Discard, &stderr, func(code int) { exitCode = code })

	if exitCode != 1 {
		t.Fatalf("expected exit 1, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), "missing config file") {
		t.Fatalf("expected diagnostic on stderr, got %q", stderr.String())
	}
}

func TestRunMain_SilentExitForwardsCode(t *testing.T) {
	origExecute := executeFunc
	executeFunc = func([]string, io.Reader, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 4}
	}
	t.Cleanup(func() { executeFunc = origExecute })

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"awl"}, nil, io.Discard, &stderr, func(code int) { exitCode = code })

	if exitCode != 4 {
		t.Fatalf("expected forwarded exit 4, got %d", exitCode)
	}
	if stderr.String() != "" {
		t.Fatalf("forwarded exit codes must not emit output, got %q", stderr.String())
	}
}

func TestRunMain_SuccessDoesNotExit(t *testing.T) {
	origExecute := executeFunc
	executeFunc = func([]string, io.Reader, io.Writer, io.Writer) error { return nil }
	t.Cleanup(func() { executeFunc = origExecute })

	exited := false
	runMain([]string{"awl"}, nil, io.Discard, io.Discard, func(int) { exited = true })
	if exited {
		t.Fatal("successful runs must not call exit")
	}
}

func TestRunMain_MissingConfigFile(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	t.Setenv(config.EnvHome, base)
	t.Setenv(config.EnvConfig, configPath)

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"awl", "--version"}, nil, io.Discard, &stderr, func(code int) { exitCode = code })

	if exitCode != 1 {
		t.Fatalf("expected exit 1 for missing config, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), configPath) {
		t.Fatalf("expected error naming %s, got %q", configPath, stderr.String())
	}
}

func TestRootCmd_ForwardsArgumentsVerbatim(t *testing.T) {
	var got []string
	origLaunch := launchRun
	launchRun = func(args []string, _ io.Reader, _ io.Writer, _ io.Writer) (int, error) {
		got = args
		return 0, nil
	}
	t.Cleanup(func() { launchRun = origLaunch })

	args := []string{"awl", "--help", "-i", "hosts", "play.yml"}
	if err := execute(args, nil, io.Discard, io.Discard); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Join(got, " ") != "--help -i hosts play.yml" {
		t.Fatalf("flags must pass through untouched, got %v", got)
	}
}

func TestRootCmd_NonZeroLaunchBecomesSilentExit(t *testing.T) {
	origLaunch := launchRun
	launchRun = func([]string, io.Reader, io.Writer, io.Writer) (int, error) {
		return 2, nil
	}
	t.Cleanup(func() { launchRun = origLaunch })

	err := execute([]string{"awl", "play.yml"}, nil, io.Discard, io.Discard)
	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 2 {
		t.Fatalf("expected silent exit with code 2, got %v", err)
	}
}

func TestUserAgent(t *testing.T) {
	origVersion, origCommit := Version, Commit
	Version, Commit = "1.2.3", "abc1234"
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	if got := userAgent(); got != "ansible-launcher/1.2.3 (abc1234)" {
		t.Fatalf("unexpected user agent %q", got)
	}
}
