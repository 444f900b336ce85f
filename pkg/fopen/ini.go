package fopen

import (
	"strings"
)

// iniLine is one physical line of an INI document, tagged with which
// of three roles it plays: a [section] header, a key=value pair
// (scoped to whichever section precedes it), or anything else
// (comments, blank lines, malformed lines) kept verbatim so a
// whole-file rewrite never loses content the parser didn't understand
// — the tri-state line model this package is grounded on.
type iniLine struct {
	isSection bool
	isKey     bool
	raw       string // verbatim text, used when neither isSection nor isKey
	section   string
	key       string
	value     string
}

func (l iniLine) render() string {
	switch {
	case l.isSection:
		return "[" + l.section + "]"
	case l.isKey:
		return l.key + "=" + l.value
	default:
		return l.raw
	}
}

func (l iniLine) matches(section, key string) bool {
	return l.isKey && strings.EqualFold(l.section, section) && strings.EqualFold(l.key, key)
}

func (l iniLine) inSection(section string) bool {
	return l.isKey && strings.EqualFold(l.section, section)
}

type iniDoc struct {
	lines []iniLine
}

// parseIni splits text into its tri-state lines. A key=value line only
// counts as a key when a section header precedes it; anything else
// (including a key=value-shaped line before any section) is kept as a
// verbatim Other line, matching original_source's Ini::parse.
func parseIni(text string) *iniDoc {
	doc := &iniDoc{}
	currentSection := ""
	haveSection := false
	for _, raw := range strings.Split(text, "\n") {
		trim := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]"):
			currentSection = strings.TrimSuffix(strings.TrimPrefix(trim, "["), "]")
			haveSection = true
			doc.lines = append(doc.lines, iniLine{isSection: true, section: currentSection})
		case haveSection:
			if key, val, ok := strings.Cut(trim, "="); ok {
				doc.lines = append(doc.lines, iniLine{
					isKey:   true,
					section: currentSection,
					key:     strings.TrimSpace(key),
					value:   strings.TrimSpace(val),
				})
			} else {
				doc.lines = append(doc.lines, iniLine{raw: raw})
			}
		default:
			doc.lines = append(doc.lines, iniLine{raw: raw})
		}
	}
	return doc
}

func (d *iniDoc) String() string {
	rendered := make([]string, len(d.lines))
	for i, l := range d.lines {
		rendered[i] = l.render()
	}
	return strings.Join(rendered, "\n")
}

func (d *iniDoc) get(section, key string) (string, bool) {
	for _, l := range d.lines {
		if l.matches(section, key) {
			return l.value, true
		}
	}
	return "", false
}

// set writes section/key=value, replacing an existing key in place or
// inserting a new one immediately after the section's last existing
// key (or appending a brand-new [section] block when the section
// doesn't exist yet).
func (d *iniDoc) set(section, key, value string) {
	for i, l := range d.lines {
		if l.matches(section, key) {
			d.lines[i].value = value
			return
		}
	}
	insertAt := -1
	for i, l := range d.lines {
		if l.inSection(section) || (l.isSection && strings.EqualFold(l.section, section)) {
			insertAt = i
		}
	}
	newLine := iniLine{isKey: true, section: section, key: key, value: value}
	if insertAt >= 0 {
		d.lines = append(d.lines, iniLine{})
		copy(d.lines[insertAt+2:], d.lines[insertAt+1:])
		d.lines[insertAt+1] = newLine
		return
	}
	d.lines = append(d.lines, iniLine{isSection: true, section: section}, newLine)
}

func (d *iniDoc) remove(section, key string) bool {
	for i, l := range d.lines {
		if l.matches(section, key) {
			d.lines = append(d.lines[:i], d.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (d *iniDoc) removeSection(section string) bool {
	kept := d.lines[:0]
	removed := false
	for _, l := range d.lines {
		if l.isSection && strings.EqualFold(l.section, section) {
			removed = true
			continue
		}
		if l.inSection(section) {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	d.lines = kept
	return removed
}

func (d *iniDoc) sections() []string {
	var out []string
	for _, l := range d.lines {
		if l.isSection {
			out = append(out, l.section)
		}
	}
	return out
}

func (d *iniDoc) keys(section string) []string {
	var out []string
	for _, l := range d.lines {
		if l.inSection(section) {
			out = append(out, l.key)
		}
	}
	return out
}

// GetSections lists the section headers of the loaded text image, in
// document order.
func (f *File) GetSections() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil
	}
	return parseIni(f.text).sections()
}

// GetKeys lists the key names under section, in document order.
func (f *File) GetKeys(section string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil
	}
	return parseIni(f.text).keys(section)
}

// IniRead reads a single key's value, case-insensitively on both
// section and key name.
func (f *File) IniRead(section, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return "", false
	}
	return parseIni(f.text).get(section, key)
}

// IniWrite sets section/key=value in the text image, ready for Close
// to flush.
func (f *File) IniWrite(section, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := parseIni(f.text)
	doc.set(section, key, value)
	f.text = doc.String()
	f.loaded = true
}

// IniDelete removes a single key, or (when key is nil) the entire
// section.
func (f *File) IniDelete(section string, key *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := parseIni(f.text)
	var changed bool
	if key != nil {
		changed = doc.remove(section, *key)
	} else {
		changed = doc.removeSection(section)
	}
	if changed {
		f.text = doc.String()
	}
	f.loaded = true
}
