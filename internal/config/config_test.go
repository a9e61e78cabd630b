package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fortls.yaml")
	contents := "pp_defs:\n  DEBUG: \"1\"\ninclude_dirs:\n  - include\nmax_line_length: 132\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.PPDefs["DEBUG"] != "1" {
		t.Errorf("expected pp_defs.DEBUG=1, got %q", opts.PPDefs["DEBUG"])
	}
	if len(opts.IncludeDirs) != 1 || opts.IncludeDirs[0] != "include" {
		t.Errorf("unexpected include_dirs: %v", opts.IncludeDirs)
	}
	if opts.MaxLineLength != 132 {
		t.Errorf("expected max_line_length=132, got %d", opts.MaxLineLength)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fortls.json")
	contents := `{"pp_defs":{"FOO":"bar"},"max_comment_line_length":72}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.PPDefs["FOO"] != "bar" {
		t.Errorf("expected pp_defs.FOO=bar, got %q", opts.PPDefs["FOO"])
	}
	if opts.MaxCommentLineLength != 72 {
		t.Errorf("expected max_comment_line_length=72, got %d", opts.MaxCommentLineLength)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestShouldPreprocessBySuffix(t *testing.T) {
	opts := Default()
	opts.PPSuffixes = []string{".F90", ".FPP"}
	if !opts.ShouldPreprocess("mod.F90") {
		t.Errorf("expected mod.F90 to be preprocessed")
	}
	if opts.ShouldPreprocess("mod.f90") {
		t.Errorf("did not expect mod.f90 to be preprocessed")
	}
}

func TestShouldPreprocessByUppercaseExtension(t *testing.T) {
	opts := Default()
	if !opts.ShouldPreprocess("mod.F90") {
		t.Errorf("expected mod.F90 (uppercase extension) to be preprocessed")
	}
	if opts.ShouldPreprocess("mod.f90") {
		t.Errorf("did not expect mod.f90 (lowercase extension) to be preprocessed")
	}
	if opts.ShouldPreprocess("mod") {
		t.Errorf("did not expect an extensionless path to be preprocessed")
	}
}
