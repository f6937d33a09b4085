package dockerfile

import (
	"strings"

	"github.com/pkg/errors"
)

// Working directory a stage returns to once every scope has been closed.
const rootWorkdir = "/"

// Accumulates the instructions of a single build stage.
//
// Lines are appended in emission order and never rewritten. The stage also
// tracks the working directory scopes opened through [Stage.RunScoped], so
// that the emitted WORKDIR instructions always reflect the nesting of the
// blocks that produced them.
type Stage struct {
	base     string   // Base image reference passed to FROM.
	lines    []string // Rendered instruction lines, in emission order.
	workdir  string   // Current working directory, empty until a WORKDIR is emitted.
	workdirs []string // Open working directory scopes, innermost last.
	frozen   bool     // Set once the owning file has been rendered.
}

// Creates a new [Stage] based on the given image.
//
// The stage starts with a single FROM line. The image reference is not
// validated.
func NewStage(base string) *Stage {
	s := &Stage{base: base}
	s.emit("FROM", base)
	return s
}

// Returns the base image reference of the stage.
func (s *Stage) Base() string {
	return s.base
}

// Returns the current working directory.
//
// The value is empty until the first WORKDIR instruction has been emitted.
func (s *Stage) Workdir() string {
	return s.workdir
}

// Appends a COPY instruction.
//
// The source may carry flags such as "--from=build"; it is written as given.
func (s *Stage) Copy(src, dest string) {
	s.emit("COPY", src+" "+dest)
}

// Appends an ADD instruction.
func (s *Stage) Add(arg string) {
	s.emit("ADD", arg)
}

// Appends a RUN instruction with an already escaped shell command.
func (s *Stage) RunRaw(command string) {
	s.emit("RUN", command)
}

// Appends a WORKDIR instruction and makes path the current working directory.
func (s *Stage) SetWorkdir(path string) {
	s.emit("WORKDIR", path)
	s.workdir = path
}

// Switches the working directory back to the filesystem root.
func (s *Stage) ResetWorkdir() {
	s.SetWorkdir(rootWorkdir)
}

func (s *Stage) User(name string) {
	s.emit("USER", name)
}

func (s *Stage) Cmd(arg string) {
	s.emit("CMD", arg)
}

func (s *Stage) Arg(arg string) {
	s.emit("ARG", arg)
}

func (s *Stage) Env(arg string) {
	s.emit("ENV", arg)
}

// Runs fn with a [Commander] bound to this stage, optionally inside a
// working directory scope.
//
// An empty workdir runs fn without opening a scope. Otherwise workdir is
// pushed and a WORKDIR instruction is emitted before fn runs. When fn
// returns, fails or panics, the scope is closed and a WORKDIR instruction
// restores the enclosing scope's directory, or "/" if no scope remains open.
//
// Closing a scope other than the innermost one is a contract violation and
// panics with [ErrScopeViolation].
func (s *Stage) RunScoped(workdir string, fn func(c *Commander) error) error {
	c := &Commander{stage: s}
	if workdir == "" {
		return fn(c)
	}

	s.pushWorkdir(workdir)
	defer func() {
		if err := s.popWorkdir(workdir); err != nil {
			panic(err)
		}
	}()

	return fn(c)
}

// Opens a working directory scope.
func (s *Stage) pushWorkdir(workdir string) {
	s.workdirs = append(s.workdirs, workdir)
	s.SetWorkdir(workdir)
}

// Closes the innermost working directory scope, which must be workdir, and
// emits the WORKDIR instruction that restores the enclosing directory.
func (s *Stage) popWorkdir(workdir string) error {
	n := len(s.workdirs)
	if n == 0 {
		return errors.Wrapf(ErrScopeViolation, "closing %q with no open scope", workdir)
	}
	if top := s.workdirs[n-1]; top != workdir {
		return errors.Wrapf(ErrScopeViolation, "closing %q, innermost scope is %q", workdir, top)
	}

	s.workdirs = s.workdirs[:n-1]
	if len(s.workdirs) == 0 {
		s.ResetWorkdir()
	} else {
		s.SetWorkdir(s.workdirs[len(s.workdirs)-1])
	}

	return nil
}

// Returns the stage's lines joined by newlines.
func (s *Stage) Render() string {
	return strings.Join(s.lines, "\n")
}

// Appends a single instruction line.
//
// Panics with [ErrFrozen] if the owning file has already been rendered.
func (s *Stage) emit(keyword, arg string) {
	if s.frozen {
		panic(errors.Wrapf(ErrFrozen, "cannot append %s", keyword))
	}
	s.lines = append(s.lines, keyword+" "+arg)
}
