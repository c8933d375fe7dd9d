package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// GetShellCommand builds an exec.Cmd that runs command through the host shell.
func GetShellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		// Try PowerShell first, then Cmd
		if _, err := exec.LookPath("powershell"); err == nil {
			return exec.Command("powershell", "-Command", command)
		}
		return exec.Command("cmd", "/C", command)
	}

	// Unix-like (Linux, macOS)
	// Use $SHELL if set, otherwise fallback to sh
	shell := os.Getenv("SHELL")
	if shell != "" {
		return exec.Command(shell, "-c", command)
	}
	if _, err := exec.LookPath("bash"); err == nil {
		return exec.Command("bash", "-c", command)
	}
	return exec.Command("sh", "-c", command)
}

// RunCommand executes a shell command string with dir as working directory.
// Tool output never reaches the console; it is captured only so a non-zero
// exit can be reported with context.
func RunCommand(dir, command string) error {
	cmd := GetShellCommand(command)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("command %q failed: %s: %w", command, string(out), err)
	}
	return nil
}
