//go:build windows

package filesystem

import (
	"fmt"
	"os"
	"os/exec"
)

// repairPermissions grants the current user full control over path via the
// platform ACL tooling. Best effort: the caller re-probes afterwards.
func repairPermissions(path string) error {
	user := os.Getenv("USERNAME")
	if user == "" {
		return fmt.Errorf("cannot determine current user for permission repair")
	}
	cmd := exec.Command("icacls", path, "/grant", fmt.Sprintf("%s:(OI)(CI)F", user))
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("icacls failed: %w: %s", err, string(output))
	}
	return nil
}
