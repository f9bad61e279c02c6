package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/utopianit-base/recgen/pkg/report"
)

func TestConsoleWritesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	console := report.NewConsole(&buf)

	console.Successf("registered %s", "NewWidget")
	console.Failuref("rejected %q", "Bad Name")
	console.Infof("%d constructors", 2)

	out := buf.String()
	for _, want := range []string{"registered NewWidget", `rejected "Bad Name"`, "2 constructors"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Fatalf("line count = %d, want 3", got)
	}
}

func TestNopDiscards(t *testing.T) {
	var reporter report.Reporter = report.Nop{}
	reporter.Successf("ignored")
	reporter.Failuref("ignored")
	reporter.Infof("ignored")
}
