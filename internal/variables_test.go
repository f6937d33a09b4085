package internal

import "testing"

func TestVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "(undefined)"},
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"V1.2", "1.2.0"},
		{"v1.0.0-rc.1", "1.0.0-rc.1"},
		{"nightly", "nightly"},
	}

	saved := version
	defer func() { version = saved }()

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			version = tt.raw
			if got := Version(); got != tt.want {
				t.Fatalf("Version() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionStringLocal(t *testing.T) {
	saved := gitCommit
	defer func() { gitCommit = saved }()

	gitCommit = ""
	if got := VersionString(); got != "(local)" {
		t.Fatalf("VersionString() = %q, want (local)", got)
	}
}

func TestDockerProgram(t *testing.T) {
	defer SetDockerProgram(DockerProgram())

	SetDockerProgram(" /usr/local/bin/docker ")
	if got := DockerProgram(); got != "/usr/local/bin/docker" {
		t.Fatalf("DockerProgram() = %q", got)
	}

	SetDockerProgram("")
	if got := DockerProgram(); got != "" {
		t.Fatalf("DockerProgram() = %q, want empty", got)
	}
}
