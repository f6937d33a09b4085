// Package docker issues docker CLI invocations.
//
// A [Client] turns method calls into argument lists for the docker program
// and runs them through a [Shell]. [ExecShell] runs them on the host; tests
// substitute a recording shell. The client does not interpret output beyond
// splitting identifier lists for its bulk operations.
//
// Builds go through buildx: platforms are normalized, tags are checked to be
// valid image references, and additional named build contexts can be
// attached.
//
// [Client.RemoveImages] and [Client.StopAll] fan out over the identifiers
// listed by "docker images" and "docker ps" with bounded concurrency. Neither
// runs "docker system prune", which would also discard the build cache.
//
// Example usage:
//
//	client := docker.New(&docker.ExecShell{}, docker.WithProgress(os.Stderr))
//
//	id, err := client.Buildx().Build(ctx, "dist", docker.BuildOptions{
//	    Platforms: []string{docker.PlatformAMD64},
//	    Tag:       "ghcr.io/acme/app:1.0.0",
//	    Quiet:     true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	if _, err := client.Push(ctx, "ghcr.io/acme/app:1.0.0"); err != nil {
//	    return err
//	}
package docker
