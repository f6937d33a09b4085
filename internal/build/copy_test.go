package build

import (
	"errors"
	"testing"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
)

func TestExecuteCopy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "context copy",
			input: "src /app/src",
			want:  "COPY src /app/src",
		},
		{
			name:  "relative dest",
			input: "run.sh ./",
			want:  "COPY run.sh ./",
		},
		{
			name:  "stage copy",
			input: "build:/out/app /usr/local/bin/app",
			want:  "COPY --from=build /out/app /usr/local/bin/app",
		},
		{
			name:  "colon after slash is a context path",
			input: "/foo:bar /bar",
			want:  "COPY /foo:bar /bar",
		},
		{
			name:  "flags and several sources",
			input: "--chown=app:app a b /app/",
			want:  "COPY --chown=app:app a b /app/",
		},
		{
			name:  "named context",
			input: "assets:/img /srv/img",
			want:  "COPY --from=assets /img /srv/img",
		},
		{
			name:    "from flag",
			input:   "--from=build /a /b",
			wantErr: true,
		},
		{
			name:    "missing destination",
			input:   "src",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecipe([]string{"assets"})
			s := dockerfile.NewStage("alpine")
			err := r.executeCopy(s, tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrCopy) {
					t.Fatalf("err = %v, want %v", err, ErrCopy)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := s.Render(); got != "FROM alpine\n"+tt.want {
				t.Fatalf("Render() = %q, want %q", got, "FROM alpine\n"+tt.want)
			}
		})
	}
}
