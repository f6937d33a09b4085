// Package dockerfile generates Dockerfile text through a typed builder.
//
// A [File] holds an ordered list of stages. Each [Stage] starts with a FROM
// line for its base image and accumulates instruction lines in the order
// they are emitted. Rendering joins a stage's lines with newlines and the
// stages of a file with a blank line, producing text that can be written
// verbatim to a file named [Name].
//
// Working directory changes can be scoped. [Stage.RunScoped] emits a WORKDIR
// for the scope, hands the block a [Commander] that can only emit RUN lines
// and nested scopes, and emits the WORKDIR that restores the enclosing
// directory when the block exits, however it exits.
//
// Builders are not safe for concurrent use.
//
// Example usage:
//
//	text := dockerfile.Build(func(f *dockerfile.File) {
//	    f.From(dockerfile.OpenJDK("17"), func(s *dockerfile.Stage) {
//	        s.SetWorkdir("/app")
//	        s.Copy("build/libs", "/app/libs")
//	        s.RunScoped("/tmp", func(c *dockerfile.Commander) error {
//	            c.Send("rpm", "-i", "tool.rpm")
//	            return nil
//	        })
//	        s.Cmd("./run.sh")
//	    })
//	})
//
//	path, err := dockerfile.Write("dist", text)
//	if err != nil {
//	    return err
//	}
package dockerfile
