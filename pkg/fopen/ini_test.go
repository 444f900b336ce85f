package fopen

import "testing"

const sampleIni = "; leading comment\n[net]\nhost=localhost\nport=8080\n\n[ui]\ntheme=dark\n"

func TestParseIniSectionsAndKeys(t *testing.T) {
	doc := parseIni(sampleIni)
	if got := doc.sections(); len(got) != 2 || got[0] != "net" || got[1] != "ui" {
		t.Fatalf("got %v", got)
	}
	if got := doc.keys("net"); len(got) != 2 || got[0] != "host" || got[1] != "port" {
		t.Fatalf("got %v", got)
	}
}

func TestParseIniGetCaseInsensitive(t *testing.T) {
	doc := parseIni(sampleIni)
	v, ok := doc.get("NET", "Host")
	if !ok || v != "localhost" {
		t.Fatalf("got %q/%v", v, ok)
	}
}

func TestParseIniLeadingKeyWithoutSectionIsVerbatim(t *testing.T) {
	doc := parseIni("orphan=value\n[a]\nb=1\n")
	if _, ok := doc.get("a", "orphan"); ok {
		t.Fatal("orphan key should not have been attached to any section")
	}
	if got := doc.sections(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("got %v", got)
	}
}

func TestParseIniCommentMidSectionDoesNotHideLaterKeys(t *testing.T) {
	doc := parseIni("[net]\n; comment\nhost=localhost\n")
	v, ok := doc.get("net", "host")
	if !ok || v != "localhost" {
		t.Fatalf("got %q/%v", v, ok)
	}
}

func TestIniSetReplacesExistingKey(t *testing.T) {
	doc := parseIni(sampleIni)
	doc.set("net", "host", "example.com")
	v, ok := doc.get("net", "host")
	if !ok || v != "example.com" {
		t.Fatalf("got %q/%v", v, ok)
	}
	if got := len(doc.keys("net")); got != 2 {
		t.Fatalf("expected key count unchanged at 2, got %d", got)
	}
}

func TestIniSetAppendsNewKeyWithinSection(t *testing.T) {
	doc := parseIni(sampleIni)
	doc.set("net", "timeout", "30")
	keys := doc.keys("net")
	if len(keys) != 3 || keys[2] != "timeout" {
		t.Fatalf("got %v", keys)
	}
	if _, ok := doc.get("ui", "theme"); !ok {
		t.Fatal("unrelated section should be untouched")
	}
}

func TestIniSetCreatesNewSection(t *testing.T) {
	doc := parseIni(sampleIni)
	doc.set("db", "dsn", "sqlite://x")
	if got := doc.sections(); len(got) != 3 || got[2] != "db" {
		t.Fatalf("got %v", got)
	}
	v, ok := doc.get("db", "dsn")
	if !ok || v != "sqlite://x" {
		t.Fatalf("got %q/%v", v, ok)
	}
}

func TestIniRemoveKey(t *testing.T) {
	doc := parseIni(sampleIni)
	if !doc.remove("net", "port") {
		t.Fatal("expected removal to report a change")
	}
	if _, ok := doc.get("net", "port"); ok {
		t.Fatal("key should be gone")
	}
	if _, ok := doc.get("net", "host"); !ok {
		t.Fatal("sibling key should remain")
	}
}

func TestIniRemoveSection(t *testing.T) {
	doc := parseIni(sampleIni)
	if !doc.removeSection("net") {
		t.Fatal("expected removal to report a change")
	}
	if got := doc.sections(); len(got) != 1 || got[0] != "ui" {
		t.Fatalf("got %v", got)
	}
}

func TestIniRenderPreservesCommentsAndBlanks(t *testing.T) {
	doc := parseIni(sampleIni)
	doc.set("net", "host", "changed")
	rendered := doc.String()
	if rendered == "" {
		t.Fatal("expected non-empty render")
	}
	found := false
	for _, l := range doc.lines {
		if !l.isSection && !l.isKey && l.raw == "; leading comment" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the leading comment line to survive untouched")
	}
}

func TestFileIniReadWriteDelete(t *testing.T) {
	f := &File{loaded: true, text: sampleIni}
	v, ok := f.IniRead("ui", "theme")
	if !ok || v != "dark" {
		t.Fatalf("got %q/%v", v, ok)
	}
	f.IniWrite("ui", "theme", "light")
	v, ok = f.IniRead("ui", "theme")
	if !ok || v != "light" {
		t.Fatalf("got %q/%v", v, ok)
	}
	key := "theme"
	f.IniDelete("ui", &key)
	if _, ok := f.IniRead("ui", "theme"); ok {
		t.Fatal("expected key to be gone after delete")
	}
	f.IniDelete("net", nil)
	if got := f.GetSections(); len(got) != 1 {
		t.Fatalf("expected only ui section left (now keyless), got %v", got)
	}
}
