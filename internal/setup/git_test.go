package setup

import (
	"errors"
	"strings"
	"testing"
)

func TestGitRunsInit(t *testing.T) {
	dir := t.TempDir()
	commands := stubRunner(t, nil)

	mustCreate(t, NewGit(dir))

	if len(*commands) != 1 || (*commands)[0] != "git init" {
		t.Errorf("expected a single 'git init' call, got %v", *commands)
	}
}

func TestGitFailureIsWrapped(t *testing.T) {
	dir := t.TempDir()
	cause := errors.New("git: not found")
	stubRunner(t, func(_, _ string) error { return cause })

	err := NewGit(dir).Create()
	if err == nil {
		t.Fatal("expected error when git init fails")
	}
	if !strings.Contains(err.Error(), "could not initialize git repository") {
		t.Errorf("error should name the operation: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("original cause must be chained, got %v", err)
	}
}

func TestGitIgnoresConfiguration(t *testing.T) {
	dir := t.TempDir()
	stubRunner(t, nil)

	step := NewGit(dir)
	step.Configure(nil)
	mustCreate(t, step)
}
