package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	orig := Commit
	t.Cleanup(func() { Commit = orig })

	Commit = "0123456789abcdef"
	if got := Short(); got != Version+" (0123456)" {
		t.Errorf("Short() = %q", got)
	}

	Commit = "none"
	if got := Short(); got != Version+" (none)" {
		t.Errorf("Short() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
