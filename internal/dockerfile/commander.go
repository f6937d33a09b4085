package dockerfile

import "github.com/kballard/go-shellquote"

// Emits RUN instructions into the stage that created it.
//
// A Commander is the only capability handed to a block passed to
// [Stage.RunScoped], so scoped blocks can run commands and open nested
// scopes but cannot emit any other instruction.
type Commander struct {
	stage *Stage
}

// Emits a RUN instruction for an already escaped command line.
func (c *Commander) Run(command string) {
	c.stage.RunRaw(command)
}

// Emits a RUN instruction for a command given as separate arguments.
//
// Each argument is quoted for a POSIX shell where needed, so arguments
// containing spaces or shell metacharacters reach the program unchanged.
func (c *Commander) Send(args ...string) {
	c.stage.RunRaw(shellquote.Join(args...))
}

// Runs fn inside a nested working directory scope of the same stage.
func (c *Commander) WithWorkdir(workdir string, fn func(c *Commander) error) error {
	return c.stage.RunScoped(workdir, fn)
}
