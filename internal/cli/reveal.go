package cli

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// revealFile opens the OS file manager at path
func revealFile(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", "-R", path)
	case "windows":
		c = exec.Command("explorer", "/select,"+path)
	case "linux", "freebsd", "openbsd", "netbsd":
		c = exec.Command("xdg-open", filepath.Dir(path))
	default:
		return fmt.Errorf("don't know how to open a file manager on %s", runtime.GOOS)
	}

	if err := c.Start(); err != nil {
		return fmt.Errorf("running %s: %w", c.Path, err)
	}
	// The file manager outlives us
	return c.Process.Release()
}
