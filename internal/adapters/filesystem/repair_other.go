//go:build !windows

package filesystem

import "fmt"

// repairPermissions is a no-op outside ACL-style permission models; the
// probe failure stands.
func repairPermissions(path string) error {
	return fmt.Errorf("no permission repair available on this platform")
}
