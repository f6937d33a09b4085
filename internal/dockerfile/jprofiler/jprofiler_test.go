package jprofiler

import (
	"testing"

	"github.com/cruciblehq/dockrecipe/internal/dockerfile"
)

func TestCopyAndInstall(t *testing.T) {
	s := dockerfile.NewStage("amazoncorretto:17")
	CopyAndInstall(s)

	want := "FROM amazoncorretto:17\n" +
		"COPY --from=extra jprofiler_linux_13_0_6.rpm jprofiler_linux_13_0_6.rpm\n" +
		"RUN rpm -i jprofiler_linux_13_0_6.rpm\n" +
		"RUN rm jprofiler_linux_13_0_6.rpm"
	if got := s.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}
