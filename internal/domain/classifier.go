package domain

import "strings"

// distractionKeywords are matched as case-insensitive substrings of "app title"
var distractionKeywords = []string{
	"youtube",
	"facebook",
	"twitter",
	"reddit",
	"instagram",
	"tiktok",
	"netflix",
	"discord",
	"steam",
	"game",
}

// distractionLabels maps a keyword to the name used when talking to the user.
// Order matters: the first match wins.
var distractionLabels = []struct {
	keyword string
	label   string
}{
	{"youtube", "YouTube"},
	{"facebook", "Facebook"},
	{"twitter", "Twitter"},
	{"reddit", "Reddit"},
	{"instagram", "Instagram"},
	{"netflix", "Netflix"},
	{"discord", "Discord"},
	{"steam", "gaming"},
	{"game", "gaming"},
}

// searchText builds the lowercase text keywords are matched against
func searchText(appName, title string) string {
	return strings.ToLower(appName + " " + title)
}

// Classify labels an event as work or distraction.
// Events with no distraction keyword, including empty ones, count as work.
func Classify(appName, title string) Category {
	text := searchText(appName, title)
	for _, kw := range distractionKeywords {
		if strings.Contains(text, kw) {
			return CategoryDistraction
		}
	}
	return CategoryWork
}

// DistractionLabel names what a distracting event is about, e.g. "YouTube" or "gaming".
// Returns "distractions" when no specific site or app is recognised.
func DistractionLabel(appName, title string) string {
	text := searchText(appName, title)
	for _, l := range distractionLabels {
		if strings.Contains(text, l.keyword) {
			return l.label
		}
	}
	return "distractions"
}
