package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiStage = `
stages:
  - name: build
    from: golang:1.22
    steps:
      - workdir: /src
      - copy: . /src
      - run: go build -o /out/app .
  - jdk: "17"
    steps:
      - copy: build:/out/app /usr/local/bin/app
      - workdir: /tmp
        steps:
          - run: app --selftest
      - env: APP_MODE=prod
      - jprofiler: true
      - cmd: app
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(multiStage))
	require.NoError(t, err)
	require.Len(t, r.Stages, 2)

	build := r.Stages[0]
	assert.Equal(t, "build", build.Name)
	assert.Equal(t, "golang:1.22", build.From)
	assert.Len(t, build.Steps, 3)

	final := r.Stages[1]
	base, err := final.Base()
	require.NoError(t, err)
	assert.Equal(t, "openjdk:17", base.Image())

	group := final.Steps[1]
	assert.True(t, group.IsGroup())
	assert.Equal(t, "/tmp", group.Workdir)
	assert.Equal(t, "app --selftest", group.Steps[0].Run)
	assert.True(t, final.Steps[3].JProfiler)
}

func TestParseContexts(t *testing.T) {
	r, err := Parse([]byte(`
contexts: [assets]
stages:
  - from: nginx
    steps:
      - copy: assets:/site /usr/share/nginx/html
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"assets"}, r.Contexts)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("stages:\n  - from: alpine\n    stepz: []\n"))
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(multiStage), 0644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Stages, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileSystemOperation)
}

func TestStageBase(t *testing.T) {
	tests := []struct {
		name    string
		stage   Stage
		want    string
		wantErr bool
	}{
		{name: "from", stage: Stage{From: "alpine:3.20"}, want: "alpine:3.20"},
		{name: "jdk", stage: Stage{JDK: "21"}, want: "openjdk:21"},
		{name: "corretto", stage: Stage{Corretto: "17"}, want: "amazoncorretto:17"},
		{name: "none", stage: Stage{}, wantErr: true},
		{name: "both", stage: Stage{From: "alpine", JDK: "17"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := tt.stage.Base()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecipe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, base.Image())
		})
	}
}
