package platform

import (
	"runtime"
	"sort"
	"strings"
	"unicode"
)

// IsMac reports whether we run on macOS (darwin).
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// modifierAliases maps every accepted modifier spelling to its canonical name.
// Terminals deliver the command key as ctrl, so cmd folds into ctrl.
var modifierAliases = map[string]string{
	"ctrl": "ctrl", "control": "ctrl", "cmd": "ctrl", "command": "ctrl", "⌘": "ctrl",
	"alt": "alt", "option": "alt", "opt": "alt", "⌥": "alt",
	"super": "super", "meta": "super", "win": "super", "windows": "super",
	"shift": "shift", "⇧": "shift",
}

var modifierRank = map[string]int{"ctrl": 0, "super": 1, "alt": 2, "shift": 3}

// CanonicalKey normalizes a key description so aliases resolve to the same
// string: modifiers are folded, deduplicated and ordered, single letters are
// lower-cased so "A" and "a" compare equal.
func CanonicalKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	seen := make(map[string]bool)
	var mods, main []string
	for _, part := range strings.Split(key, "+") {
		if part == " " {
			main = append(main, "space")
			continue
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if mod, ok := modifierAliases[lower]; ok {
			if !seen[mod] {
				seen[mod] = true
				mods = append(mods, mod)
			}
			continue
		}
		if r := []rune(part); len(r) == 1 && unicode.IsLetter(r[0]) {
			main = append(main, string(unicode.ToLower(r[0])))
			continue
		}
		main = append(main, lower)
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return modifierRank[mods[i]] < modifierRank[mods[j]]
	})
	return strings.Join(append(mods, main...), "+")
}

// MatchesKey returns true if two key descriptions should be considered equivalent.
func MatchesKey(actual, binding string) bool {
	return CanonicalKey(actual) == CanonicalKey(binding)
}

// IsPlainKey reports whether key is a single printable key without modifiers.
// Plain keys are the ones the shortcuts preference can switch off.
func IsPlainKey(key string) bool {
	canonical := CanonicalKey(key)
	if canonical == "" || strings.Contains(canonical, "+") {
		return false
	}
	return len([]rune(canonical)) == 1
}

// DisplayKey formats a key binding for UI hints with platform-friendly modifier names.
func DisplayKey(key string) string {
	canonical := CanonicalKey(key)
	if canonical == "" {
		return ""
	}
	parts := strings.Split(canonical, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			if IsMac() {
				parts[i] = "Option"
			} else {
				parts[i] = "Alt"
			}
		case "super":
			parts[i] = "Super"
		case "shift":
			parts[i] = "Shift"
		case "esc":
			parts[i] = "Esc"
		case "comma":
			parts[i] = ","
		default:
			runes := []rune(p)
			if len(runes) == 1 {
				parts[i] = strings.ToUpper(p)
			} else {
				parts[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
			}
		}
	}
	return strings.Join(parts, "+")
}
