package probe

import (
	"context"
	"os/exec"
	"time"
)

// runCmd runs an external command with a hard timeout and returns its combined
// output. Callers treat any error the same as empty output.
func runCmd(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	return string(out), err
}
