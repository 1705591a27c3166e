package fzfutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	_ "github.com/junegunn/fzf/src"
)

// isFzfAvailable checks if fzf is available in PATH
func isFzfAvailable() bool {
	_, err := exec.LookPath("fzf")
	return err == nil
}

func SelectWithFzf(ctx context.Context, input io.Reader) (string, error) {
	if !isFzfAvailable() {
		return "", fmt.Errorf("fzf not available")
	}

	cmd := exec.CommandContext(ctx, "fzf",
		"--height", "40%",
		"--reverse",
		"--border",
		"--prompt", "Select model: ",
		"--ansi",
	)

	cmd.Stdin = input
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	selected := strings.TrimSpace(string(output))
	if selected == "" {
		return "", fmt.Errorf("no model selected")
	}

	return selected, nil
}
