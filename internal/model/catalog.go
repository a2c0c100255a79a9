package model

// AllMarkers are the completion marker tags a habit can use on the calendar.
var AllMarkers = []string{
	"check-circle", "arrow-up-circle", "arrow-down-circle", "build-circle", "pause-circle",
	"play-circle", "swap-horizontal-circle", "close-circle", "star-circle", "stars",
	"diamond", "gift", "at", "book-multiple", "anchor", "assistant-navigation",
	"auto-awesome", "cancel",
}

// AllIcons are the icon tags available for habits.
var AllIcons = []string{
	"run", "spa", "bolt", "menu_book", "fitness", "music", "drink", "bed",
	"trophy", "smile", "water_drop", "flame", "book", "lightbulb", "grass",
	"rupee", "walk", "bookmark",
}

// AllColors are the color tags available for habits and folders.
var AllColors = []string{
	"bright-orange", "vibrant-red", "golden-yellow", "sunset-orange", "golden-amber", "crimson-red",
	"emerald-green", "lush-green", "bright-lime", "aqua-teal", "cyan-blue", "sky-blue",
	"deep-violet", "electric-purple", "royal-blue", "bright-blue", "magenta-fuchsia", "deep-pink",
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidMarker returns true if m is a known completion marker tag.
func IsValidMarker(m string) bool { return contains(AllMarkers, m) }

// IsValidIcon returns true if i is a known icon tag.
func IsValidIcon(i string) bool { return contains(AllIcons, i) }

// IsValidColor returns true if c is a known color tag.
func IsValidColor(c string) bool { return contains(AllColors, c) }
