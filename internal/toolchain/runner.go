// pattern: Imperative Shell

package toolchain

import (
	"os/exec"
	"strings"

	"sweeper/internal/logging"
)

// Runner invokes the per-project maintenance commands with the working
// directory set to the project root. Output and exit status are captured
// into the log only; callers never see a failure, by contract.
type Runner struct {
	cleanCmd []string
	fetchCmd []string
	logger   *logging.ScopedLogger
}

// NewRunner creates a Runner for the given command lines, e.g.
// {"flutter", "clean"} and {"flutter", "pub", "get"}. logger may be nil.
func NewRunner(cleanCmd, fetchCmd []string, logger *logging.ScopedLogger) *Runner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Runner{cleanCmd: cleanCmd, fetchCmd: fetchCmd, logger: logger}
}

// Clean runs the clean command in projectPath.
func (r *Runner) Clean(projectPath string) {
	r.run(r.cleanCmd, projectPath)
}

// FetchDeps runs the dependency-fetch command in projectPath.
func (r *Runner) FetchDeps(projectPath string) {
	r.run(r.fetchCmd, projectPath)
}

func (r *Runner) run(args []string, dir string) {
	if len(args) == 0 {
		return
	}
	name := strings.Join(args, " ")
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Warn("maintenance command failed",
			"cmd", name, "dir", dir, "error", err, "output", tail(string(out), 500))
		return
	}
	r.logger.Debug("maintenance command finished", "cmd", name, "dir", dir)
}

// tail keeps the last n bytes of command output for the log.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}
