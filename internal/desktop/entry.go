// Package desktop discovers and parses freedesktop.org desktop entry files.
//
// Parsing is a line-oriented key/value scan restricted to the
// [Desktop Entry] section; any other bracketed section terminates parsing
// for that file. Unreadable or malformed entries are recovered with
// best-effort defaults, never propagated as failures.
package desktop

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Application is a launchable desktop entry. Immutable once parsed.
type Application struct {
	// Name is the display name. Defaults to "Unknown" when missing.
	Name string
	// Exec is the literal command line with field codes stripped.
	Exec string
	// Icon is the icon name, if any.
	Icon string
	// Comment is the entry's description, if any.
	Comment string
	// Categories are the semicolon-delimited Categories values.
	Categories []string
	// MimeTypes are the semicolon-delimited MimeType values.
	MimeTypes []string
	// Terminal reports whether the entry wants a terminal emulator.
	Terminal bool
	// Path is the source .desktop file (or binary path for PATH programs).
	Path string
}

// fieldCodes are the Exec placeholders stripped when building the literal
// command. Argument substitution is out of scope: a stripped command may not
// launch entries that require a file argument (e.g. editors registered as
// MIME handlers). That is a documented limitation, not silently worked
// around.
var fieldCodes = map[string]struct{}{
	"%f": {}, "%F": {}, "%u": {}, "%U": {}, "%i": {}, "%c": {}, "%k": {},
	"%d": {}, "%D": {}, "%n": {}, "%N": {}, "%v": {}, "%m": {},
}

// StripFieldCodes removes %-placeholders from an Exec value, returning the
// literal command to execute.
func StripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	kept := fields[:0]
	for _, f := range fields {
		if _, isCode := fieldCodes[f]; !isCode {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// ParseEntry parses a single .desktop file.
// Only the [Desktop Entry] section is read; '#' comments and blank lines are
// skipped. A missing Name becomes "Unknown". The returned error is non-nil
// only when the file cannot be read at all.
func ParseEntry(path string) (Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return Application{}, err
	}
	defer f.Close()

	options := make(map[string]string)

	scanner := bufio.NewScanner(f)
	inEntry := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if line == "[Desktop Entry]" {
				inEntry = true
				continue
			}
			// Any other section ends the scan, even one appearing before
			// [Desktop Entry].
			break
		}
		if !inEntry {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		options[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	name := options["Name"]
	if name == "" {
		name = "Unknown"
	}

	return Application{
		Name:       name,
		Exec:       StripFieldCodes(options["Exec"]),
		Icon:       options["Icon"],
		Comment:    options["Comment"],
		Categories: splitList(options["Categories"]),
		MimeTypes:  splitList(options["MimeType"]),
		Terminal:   options["Terminal"] == "true",
		Path:       path,
	}, scanner.Err()
}

// splitList splits a semicolon-delimited desktop list value.
// No escaping beyond literal ';' splitting.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SearchDirs returns the standard application directories: XDG data dirs
// plus the XDG data home, each with "applications" appended.
func SearchDirs() []string {
	var dirs []string

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}

	return dirs
}
