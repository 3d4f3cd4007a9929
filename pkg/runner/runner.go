// Package runner starts a child process inside a composed environment.
//
// This is where composition leaves the pure world: the child (and its own
// children) see the composed variables, the calling process does not.
package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/simenv/pkg/environ"
	serrors "github.com/arthur-debert/simenv/pkg/errors"
	"github.com/arthur-debert/simenv/pkg/logging"
)

// Streams are the child's standard streams
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams wires the child to the current process's streams
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes argv with exactly env as its environment and returns the
// child's exit code. sep splits env's PATH when looking up argv[0]. A child
// that runs and exits non-zero is not an error; failing to start it is.
func Run(ctx context.Context, env environ.Env, sep string, argv []string, streams Streams) (int, error) {
	logger := logging.GetLogger("runner")

	if len(argv) == 0 {
		return 1, serrors.New(serrors.ErrInvalidInput, "no command given")
	}

	bin, err := LookPath(argv[0], env.Get("PATH"), sep)
	if err != nil {
		return 127, err
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Env = env.List()
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	logger.Debug().Str("bin", bin).Strs("args", argv[1:]).Msg("Starting child process")

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	if ctx.Err() != nil {
		return 1, serrors.Wrapf(ctx.Err(), serrors.ErrExecFailed, "%s interrupted", argv[0])
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			code = 1
		}
		logger.Debug().Int("exitCode", code).Msg("Child process exited")
		return code, nil
	}

	return 126, serrors.Wrapf(err, serrors.ErrExecFailed, "cannot run %s", argv[0])
}

// LookPath finds name in pathList, split on sep, the way a shell would,
// except that empty segments are skipped instead of meaning ".". An empty
// sep means the platform list separator. Names containing a slash are used
// as given.
func LookPath(name, pathList, sep string) (string, error) {
	if strings.Contains(name, string(filepath.Separator)) {
		if err := checkExecutable(name); err != nil {
			return "", serrors.Wrapf(err, serrors.ErrExecFailed, "%s is not executable", name)
		}
		return name, nil
	}

	dirs := filepath.SplitList(pathList)
	if sep != "" {
		dirs = strings.Split(pathList, sep)
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if checkExecutable(candidate) == nil {
			return candidate, nil
		}
	}

	return "", serrors.Newf(serrors.ErrExecFailed, "%s: command not found", name).
		WithDetail("path", pathList)
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	if info.Mode()&0111 == 0 {
		return errors.New("permission denied")
	}
	return nil
}
