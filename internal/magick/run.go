package magick

import (
	"fmt"
	"os/exec"
)

// Execute materializes the command and either prints it (dry run) or hands
// it to the shell as a single invocation, reporting the outcome per step.
// A renderer failure is reported to the caller through the returned error
// but is not fatal here; the caller decides whether to abort.
func (c *Command) Execute(label string, dryRun bool) error {
	line := c.String()
	if dryRun {
		fmt.Printf("%s: %s\n", label, line)
		return nil
	}

	cmd := exec.Command("/bin/sh", "-c", line)
	out, err := cmd.CombinedOutput()
	if err != nil {
		code := -1
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		}
		fmt.Printf("%s: return code %d\n", label, code)
		if len(out) > 0 {
			fmt.Printf("%s: renderer output: %s\n", label, out)
		}
		return fmt.Errorf("%s step failed: %w", label, err)
	}

	fmt.Printf("%s: success!\n", label)
	return nil
}
