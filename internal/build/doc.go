// Package build renders recipe manifests into Dockerfiles and builds them.
//
// A manifest is an ordered sequence of stages, each bound to a base image.
// Rendering adds one Dockerfile stage per manifest stage and emits its steps
// (run commands, copies, instructions, and scoped groups) in declaration
// order. Copies in "stage:src dest" form become COPY --from instructions
// reading from an earlier stage or a named build context; contexts used this
// way must be supplied when building. Groups with a workdir are emitted inside a working directory
// scope, so the instructions that follow a group run in the directory that
// was current before it.
//
// The rendered Dockerfile is written verbatim to the output directory or to
// a cache directory named after its content digest, then optionally built
// with docker buildx and pushed.
//
// Example usage:
//
//	result, err := build.Run(ctx, client, build.Options{
//	    Recipe:    recipe,
//	    Root:      ".",
//	    Build:     true,
//	    Tag:       "ghcr.io/acme/app:1.0.0",
//	    Platforms: []string{"linux/amd64", "linux/arm64"},
//	})
//	if err != nil {
//	    return err
//	}
package build
