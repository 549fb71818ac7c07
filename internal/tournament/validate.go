package tournament

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ValidateBinary checks that the agent binary exists and is executable.
// Bare names without a path separator are looked up on PATH. The binary is
// not run: started without arguments it may wait for interactive input.
func ValidateBinary(binary string) (string, error) {
	if binary == "" {
		return "", fmt.Errorf("no agent binary configured")
	}

	if !strings.ContainsRune(binary, os.PathSeparator) {
		path, err := exec.LookPath(binary)
		if err != nil {
			return "", fmt.Errorf("binary not found on PATH: %s", binary)
		}
		return path, nil
	}

	info, err := os.Stat(binary)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("binary not found: %s", binary)
	}
	if err != nil {
		return "", fmt.Errorf("cannot stat binary %s: %w", binary, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("binary is a directory: %s", binary)
	}
	if info.Mode()&0111 == 0 {
		return "", fmt.Errorf("binary is not executable: %s", binary)
	}

	return binary, nil
}
