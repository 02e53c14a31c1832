// Package keybind maps keybind identifiers to display text.
package keybind

// ToTranslatable maps a keybind id to the translation key of its default binding.
var ToTranslatable = map[string]string{
	"key.jump":               "key.keyboard.space",
	"key.sneak":              "key.keyboard.left.shift",
	"key.sprint":             "key.keyboard.left.control",
	"key.forward":            "key.keyboard.w",
	"key.left":               "key.keyboard.a",
	"key.back":               "key.keyboard.s",
	"key.right":              "key.keyboard.d",
	"key.attack":             "key.mouse.left",
	"key.use":                "key.mouse.right",
	"key.pickItem":           "key.mouse.middle",
	"key.drop":               "key.keyboard.q",
	"key.inventory":          "key.keyboard.e",
	"key.swapOffhand":        "key.keyboard.f",
	"key.chat":               "key.keyboard.t",
	"key.command":            "key.keyboard.slash",
	"key.playerlist":         "key.keyboard.tab",
	"key.screenshot":         "key.keyboard.f2",
	"key.togglePerspective":  "key.keyboard.f5",
	"key.fullscreen":         "key.keyboard.f11",
	"key.advancements":       "key.keyboard.l",
	"key.socialInteractions": "key.keyboard.p",
	"key.hotbar.1":           "key.keyboard.1",
	"key.hotbar.2":           "key.keyboard.2",
	"key.hotbar.3":           "key.keyboard.3",
	"key.hotbar.4":           "key.keyboard.4",
	"key.hotbar.5":           "key.keyboard.5",
	"key.hotbar.6":           "key.keyboard.6",
	"key.hotbar.7":           "key.keyboard.7",
	"key.hotbar.8":           "key.keyboard.8",
	"key.hotbar.9":           "key.keyboard.9",
}

// ToLiteral is the text shown when no translation is available.
var ToLiteral = map[string]string{
	"key.jump":                 "Space",
	"key.sneak":                "Left Shift",
	"key.sprint":               "Left Control",
	"key.forward":              "W",
	"key.left":                 "A",
	"key.back":                 "S",
	"key.right":                "D",
	"key.attack":               "Left Button",
	"key.use":                  "Right Button",
	"key.pickItem":             "Middle Button",
	"key.drop":                 "Q",
	"key.inventory":            "E",
	"key.swapOffhand":          "F",
	"key.chat":                 "T",
	"key.command":              "/",
	"key.playerlist":           "Tab",
	"key.screenshot":           "F2",
	"key.togglePerspective":    "F5",
	"key.fullscreen":           "F11",
	"key.advancements":         "L",
	"key.socialInteractions":   "P",
	"key.hotbar.1":             "1",
	"key.hotbar.2":             "2",
	"key.hotbar.3":             "3",
	"key.hotbar.4":             "4",
	"key.hotbar.5":             "5",
	"key.hotbar.6":             "6",
	"key.hotbar.7":             "7",
	"key.hotbar.8":             "8",
	"key.hotbar.9":             "9",
	"key.saveToolbarActivator": "C",
	"key.loadToolbarActivator": "X",
}

// Render picks the display text for a keybind: the translation of its default key,
// then the literal, then the raw id.
func Render(id string, translations map[string]string) string {
	if key, ok := ToTranslatable[id]; ok {
		if text, ok := translations[key]; ok {
			return text
		}
	}
	if literal, ok := ToLiteral[id]; ok {
		return literal
	}
	return id
}
