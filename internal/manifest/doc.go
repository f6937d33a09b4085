// Package manifest reads recipe documents describing a multi-stage build.
//
// A recipe is a YAML document with an ordered list of stages. Each stage
// names its base image and lists steps. A step performs exactly one
// operation (run, copy, add, workdir, user, cmd, arg, env or jprofiler) or
// is a group of nested steps. A group with a workdir runs its steps inside a
// working directory scope that is closed again when the group ends; groups
// may only contain run steps and further groups.
//
// Copies use the "src dest" format for files from the build context, or
// "stage:src dest" to copy from an earlier stage or from a named build
// context listed under contexts. Leading "--" flags such as --chown are
// passed through, and several sources may precede the destination.
// [Recipe.Validate] checks the structure and resolves every prefixed source
// against the declared contexts and the stages declared before it.
//
// Example recipe:
//
//	contexts: [assets]
//	stages:
//	  - name: build
//	    from: golang:1.22
//	    steps:
//	      - workdir: /src
//	      - copy: . /src
//	      - run: go build -o /out/app .
//	  - jdk: "17"
//	    steps:
//	      - copy: build:/out/app /usr/local/bin/app
//	      - copy: --chown=app:app assets:/conf /etc/app/
//	      - workdir: /tmp
//	        steps:
//	          - run: app --selftest
//	      - cmd: app
package manifest
