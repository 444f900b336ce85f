package fopen

// Path-based INI helpers: each opens path, performs one operation, and
// closes it again, for callers (the INI builtin family) that don't
// otherwise need a live handle. A missing file is treated as an empty
// document rather than an error, matching original_source's
// "IOError is ignored, return blank" shortcut for these entry points.

// GetSectionsFromPath lists the sections of the INI file at path.
func GetSectionsFromPath(path string) ([]string, error) {
	f := New(path, FRead)
	if _, err := f.Open(); err != nil {
		if !f.Exists() {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return f.GetSections(), nil
}

// GetKeysFromPath lists the keys under section of the INI file at path.
func GetKeysFromPath(path, section string) ([]string, error) {
	f := New(path, FRead)
	if _, err := f.Open(); err != nil {
		if !f.Exists() {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return f.GetKeys(section), nil
}

// IniReadFromPath reads a single key's value from the INI file at path.
func IniReadFromPath(path, section, key string) (string, bool, error) {
	f := New(path, FRead)
	if _, err := f.Open(); err != nil {
		if !f.Exists() {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()
	v, ok := f.IniRead(section, key)
	return v, ok, nil
}

// IniWriteFromPath sets section/key=value in the INI file at path,
// creating it if necessary.
func IniWriteFromPath(path, section, key, value string) error {
	f := New(path, FRead|FWrite)
	if _, err := f.Open(); err != nil {
		return err
	}
	f.IniWrite(section, key, value)
	return f.Close()
}

// IniDeleteFromPath removes a key (or, when key is nil, an entire
// section) from the INI file at path.
func IniDeleteFromPath(path, section string, key *string) error {
	f := New(path, FRead|FWrite)
	if _, err := f.Open(); err != nil {
		return err
	}
	f.IniDelete(section, key)
	return f.Close()
}
