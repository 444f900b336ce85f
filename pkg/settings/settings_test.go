package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	d := Default()
	if d.AllowIEObject {
		t.Fatal("expected IE object creation disallowed by default")
	}
	if d.DefaultLocale != "en" {
		t.Fatalf("got %q", d.DefaultLocale)
	}
	if d.ControlSearchAPI != "win32" {
		t.Fatalf("got %q", d.ControlSearchAPI)
	}
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "dlg_title: MyScript\nallow_ie_object: true\ndefault_locale: ja\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.DlgTitle != "MyScript" {
		t.Fatalf("got %q", s.DlgTitle)
	}
	if !s.AllowIEObject {
		t.Fatal("expected allow_ie_object to be true")
	}
	if s.DefaultLocale != "ja" {
		t.Fatalf("got %q", s.DefaultLocale)
	}
	if s.ControlSearchAPI != "win32" {
		t.Fatalf("expected unset field to keep its default, got %q", s.ControlSearchAPI)
	}
	if Current().DlgTitle != "MyScript" {
		t.Fatalf("expected Current to report the first Load's result, got %q", Current().DlgTitle)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a nonexistent settings file")
	}
}

func TestHostDirAndHostName(t *testing.T) {
	t.Setenv("WSCRIPT_RUNTIME_DIR", "/opt/wscript")
	t.Setenv("WSCRIPT_RUNTIME_NAME", "wscriptrun")
	if HostDir() != "/opt/wscript" {
		t.Fatalf("got %q", HostDir())
	}
	if HostName() != "wscriptrun" {
		t.Fatalf("got %q", HostName())
	}
}
