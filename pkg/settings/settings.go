// Package settings holds the runtime kernel's process-wide configuration
// record, loaded once from a YAML file and published through a
// sync.Once-guarded getter, the same one-shot initialization pattern
// cmd/hiveexplorer/logger uses for its own global state.
package settings

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings is the host-configurable behavior a running script can read
// or that the runtime kernel consults before it touches the OS: the
// dialog title shown by message boxes, whether scripts may instantiate
// Internet Explorer as a COM object, the global stop-hotkey binding, the
// external browser binary path, the default locale for error messages,
// and which control-search provider order winctrl.Engine should try.
type Settings struct {
	DlgTitle          string `yaml:"dlg_title"`
	AllowIEObject     bool   `yaml:"allow_ie_object"`
	StopHotkeyEnabled bool   `yaml:"stop_hotkey_enabled"`
	StopHotkeyKey     string `yaml:"stop_hotkey_key"`
	BrowserPath       string `yaml:"browser_path"`
	DefaultLocale     string `yaml:"default_locale"`
	ControlSearchAPI  string `yaml:"control_search_api"`
}

// Default returns the settings a host gets when no config file is
// supplied: no dialog title override, IE object creation disallowed,
// the stop hotkey disabled, English locale, and the default (Win32
// first) control-search provider order.
func Default() Settings {
	return Settings{
		AllowIEObject:     false,
		StopHotkeyEnabled: false,
		DefaultLocale:     "en",
		ControlSearchAPI:  "win32",
	}
}

var (
	once    sync.Once
	loaded  bool
	current Settings
)

// Load reads and parses the YAML settings file at path, applying it on
// top of Default for any field the file omits, and publishes the result
// through Current. Only the first successful call in the process's
// lifetime takes effect, matching logger.Init's one-shot configuration
// contract (a call that fails to read or parse publishes nothing); later
// calls still parse and return path's contents, but Current keeps
// reporting whatever the first successful call published.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, err
	}
	once.Do(func() {
		current = s
		loaded = true
	})
	return s, nil
}

// Current returns the published Settings, or Default() if Load was
// never called.
func Current() Settings {
	if !loaded {
		return Default()
	}
	return current
}

// HostDir reads the WSCRIPT_RUNTIME_DIR environment variable the host
// launcher sets, corresponding to spec.md's GET_UWSC_DIR builtin.
func HostDir() string {
	return os.Getenv("WSCRIPT_RUNTIME_DIR")
}

// HostName reads the WSCRIPT_RUNTIME_NAME environment variable the host
// launcher sets, corresponding to spec.md's GET_UWSC_NAME builtin.
func HostName() string {
	return os.Getenv("WSCRIPT_RUNTIME_NAME")
}
