//go:build darwin

package sound

// candidates returns afplay commands for the event, most specific first
func candidates(eventType string) []command {
	var files []string

	switch eventType {
	case EventDistraction:
		files = []string{"/System/Library/Sounds/Sosumi.aiff", "/System/Library/Sounds/Basso.aiff"}
	case EventIdle:
		files = []string{"/System/Library/Sounds/Tink.aiff", "/System/Library/Sounds/Pop.aiff"}
	case EventStart:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Purr.aiff"}
	case EventEnd:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Hero.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	cmds := make([]command, 0, len(files))
	for _, f := range files {
		cmds = append(cmds, command{name: "afplay", args: []string{f}})
	}
	return cmds
}
