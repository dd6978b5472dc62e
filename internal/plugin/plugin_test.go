package plugin

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hashbang/shebangfmt/internal/filekind"
	"github.com/hashbang/shebangfmt/pkg/fmtplugin"
)

func TestDefaultInfo(t *testing.T) {
	info := DefaultInfo()

	if info.Name != "shebangfmt" {
		t.Errorf("Name = %q, want %q", info.Name, "shebangfmt")
	}
	if info.ConfigKey != ConfigKey {
		t.Errorf("ConfigKey = %q, want %q", info.ConfigKey, ConfigKey)
	}
	if info.Version == "" {
		t.Error("Version is empty")
	}
}

func TestResolveConfig_Empty(t *testing.T) {
	result := ResolveConfig(nil)

	if len(result.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", result.Diagnostics)
	}
	if diff := cmp.Diff(filekind.Extensions(), result.FileMatching.FileExtensions); diff != "" {
		t.Errorf("FileExtensions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(filekind.Filenames(), result.FileMatching.FileNames); diff != "" {
		t.Errorf("FileNames mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfig_UnknownKeys(t *testing.T) {
	result := ResolveConfig(map[string]any{
		"lineWidth": 80,
		"indent":    "tab",
	})

	want := []fmtplugin.Diagnostic{
		{PropertyName: "indent", Message: `unknown property "indent"`},
		{PropertyName: "lineWidth", Message: `unknown property "lineWidth"`},
	}
	if diff := cmp.Diff(want, result.Diagnostics); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}

	// Unknown keys don't change the file matching.
	if len(result.FileMatching.FileExtensions) == 0 {
		t.Error("FileExtensions is empty")
	}
}
