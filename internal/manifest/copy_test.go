package manifest

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCopy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Copy
		wantErr bool
	}{
		{
			name:  "absolute dest",
			input: "file.txt /opt/file.txt",
			want:  Copy{Sources: []string{"file.txt"}, Dest: "/opt/file.txt"},
		},
		{
			name:  "relative dest",
			input: "file.txt out/",
			want:  Copy{Sources: []string{"file.txt"}, Dest: "out/"},
		},
		{
			name:  "stage source",
			input: "build:/out/app /usr/local/bin/app",
			want:  Copy{From: "build", Sources: []string{"/out/app"}, Dest: "/usr/local/bin/app"},
		},
		{
			name:  "several sources",
			input: "a b c /dst/",
			want:  Copy{Sources: []string{"a", "b", "c"}, Dest: "/dst/"},
		},
		{
			name:  "flags",
			input: "--chown=app:app --chmod=755 build:/out/app build:/out/lib /opt/",
			want: Copy{
				Flags:   []string{"--chown=app:app", "--chmod=755"},
				From:    "build",
				Sources: []string{"/out/app", "/out/lib"},
				Dest:    "/opt/",
			},
		},
		{
			name:    "mixed stages",
			input:   "build:/a other:/b /dst/",
			wantErr: true,
		},
		{
			name:    "stage and context sources",
			input:   "build:/a b /dst/",
			wantErr: true,
		},
		{
			name:    "from flag",
			input:   "--from=build /a /b",
			wantErr: true,
		},
		{
			name:    "flags only",
			input:   "--chown=app /b",
			wantErr: true,
		},
		{
			name:    "missing destination",
			input:   "file.txt",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCopy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCopy) {
					t.Fatalf("err = %v, want %v", err, ErrInvalidCopy)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCopy(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStageCopy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		stage string
		path  string
		ok    bool
	}{
		{
			name:  "valid stage copy",
			input: "build:/app/bin",
			stage: "build",
			path:  "/app/bin",
			ok:    true,
		},
		{
			name:  "stage index",
			input: "0:/out",
			stage: "0",
			path:  "/out",
			ok:    true,
		},
		{
			name:  "no colon",
			input: "/usr/local/bin",
		},
		{
			name:  "colon at start",
			input: ":/some/path",
		},
		{
			name:  "colon after slash",
			input: "/foo:bar",
		},
		{
			name:  "slash in prefix",
			input: "some/stage:path",
		},
		{
			name:  "simple host path",
			input: "file.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, path, ok := ParseStageCopy(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if stage != tt.stage {
				t.Errorf("stage = %q, want %q", stage, tt.stage)
			}
			if path != tt.path {
				t.Errorf("path = %q, want %q", path, tt.path)
			}
		})
	}
}
