package winctrl

import "strings"

// fixedNames returns the literal name plus the alternate spellings
// MatchTitle also accepts for exact (non-partial) comparison: the
// ampersand-stripped mnemonic, and the text before a trailing "(&X)"
// accelerator annotation.
func fixedNames(name string) []string {
	names := []string{name}
	if strings.Contains(name, "&") {
		names = append(names, strings.ReplaceAll(name, "&", ""))
	}
	if head, _, ok := strings.Cut(name, "(&"); ok {
		names = append(names, strings.TrimRight(head, " "))
	}
	return names
}

// MatchTitle reports whether a control's display name matches pat,
// case-insensitively. In partial mode it's a substring test; otherwise
// name must equal pat, the ampersand-stripped form of name, or the text
// preceding a trailing "(&X)" accelerator annotation.
func MatchTitle(name, pat string, partial bool) bool {
	lowerName := strings.ToLower(name)
	lowerPat := strings.ToLower(pat)
	if partial {
		return strings.Contains(lowerName, lowerPat)
	}
	for _, n := range fixedNames(lowerName) {
		if n == lowerPat {
			return true
		}
	}
	return false
}

// PathSegments splits a `\`-separated menu/treeview path name into its
// components. A plain name with no backslash yields a single segment.
func PathSegments(name string) []string {
	return strings.Split(name, `\`)
}

// GroupNames splits a tab-separated group name (e.g. a list's
// select-all-of-these-names convention) into its member names.
func GroupNames(name string) []string {
	return strings.Split(name, "\t")
}

// IsGroupName reports whether name uses the tab-separated group
// convention.
func IsGroupName(name string) bool {
	return strings.Contains(name, "\t")
}

// IsPathName reports whether name uses the `\`-separated path
// convention.
func IsPathName(name string) bool {
	return strings.Contains(name, `\`)
}
