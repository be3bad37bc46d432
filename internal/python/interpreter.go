// SPDX-License-Identifier: MPL-2.0

package python

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// probeScript prints "<PEP 440 version> <pointer bits>", e.g. "3.13.0rc1 64".
const probeScript = `import platform, struct; print(platform.python_version(), struct.calcsize("P") * 8)`

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Interpreter is a concrete Python executable together with the facts
	// learned by probing it. Values are immutable once probed.
	Interpreter struct {
		// Executable is the absolute path of the interpreter binary.
		Executable string
		// Version is the interpreter's PEP 440 version.
		Version Version
		// Valid is false when the executable could not be probed.
		Valid bool
		// Is32Bit reports a 32-bit build.
		Is32Bit bool
	}

	// Prober runs interpreters to learn their version.
	Prober struct {
		execCommand ExecCommandFunc
	}

	// ProberOption configures a Prober.
	ProberOption func(*Prober)
)

// WithProbeExecCommand sets a custom exec command function for testing.
func WithProbeExecCommand(fn ExecCommandFunc) ProberOption {
	return func(p *Prober) {
		p.execCommand = fn
	}
}

// NewProber creates a Prober that runs real processes.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{execCommand: exec.CommandContext}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe runs exe and returns what it reports about itself. It never returns
// nil; on failure the result has Valid == false.
func (p *Prober) Probe(ctx context.Context, exe string) *Interpreter {
	interp := &Interpreter{Executable: exe}

	cmd := p.execCommand(ctx, exe, "-c", probeScript)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return interp
	}

	fields := strings.Fields(out.String())
	if len(fields) == 0 {
		return interp
	}
	v, err := ParseVersion(fields[0])
	if err != nil || len(v.Release()) < 2 {
		return interp
	}
	interp.Version = v
	interp.Valid = true
	if len(fields) > 1 {
		if bits, err := strconv.Atoi(fields[1]); err == nil {
			interp.Is32Bit = bits == 32
		}
	}
	return interp
}

// Identifier returns the name fragment used for default environment names,
// e.g. "3.11", or "3.11-32" for a 32-bit Windows build.
func (i *Interpreter) Identifier() string {
	ident := i.MajorMinor()
	if runtime.GOOS == "windows" && i.Is32Bit {
		ident += "-32"
	}
	return ident
}

// MajorMinor returns "<major>.<minor>".
func (i *Interpreter) MajorMinor() string {
	return fmt.Sprintf("%d.%d", i.Version.Major(), i.Version.Minor())
}

// String returns a human readable description.
func (i *Interpreter) String() string {
	if !i.Valid {
		return fmt.Sprintf("%s (invalid)", i.Executable)
	}
	return fmt.Sprintf("%s (%s)", i.Executable, i.Version)
}
