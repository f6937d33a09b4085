// Package jprofiler installs the JProfiler agent into a build stage.
//
// The rpm is not downloaded during the build. It is copied from an additional
// build context named [ContextName], which the caller passes to buildx
// (--build-context extra=DIR).
package jprofiler

import "github.com/cruciblehq/dockrecipe/internal/dockerfile"

const (

	// Name of the additional build context holding the rpm.
	ContextName = "extra"

	// File name of the JProfiler rpm inside the extra context.
	RPM = "jprofiler_linux_13_0_6.rpm"
)

// Copies the JProfiler rpm from the extra build context and installs it.
//
// The rpm is removed again in the same scope after installation.
func CopyAndInstall(s *dockerfile.Stage) {
	s.Copy("--from="+ContextName+" "+RPM, RPM)

	s.RunScoped("", func(c *dockerfile.Commander) error {
		c.Send("rpm", "-i", RPM)
		c.Send("rm", RPM)
		return nil
	})
}
