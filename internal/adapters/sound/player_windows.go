//go:build windows

package sound

// candidates returns PowerShell system sound commands for the event
func candidates(eventType string) []command {
	var sounds []string

	switch eventType {
	case EventDistraction:
		sounds = []string{"Exclamation", "Beep"}
	case EventIdle:
		sounds = []string{"Asterisk", "Beep"}
	case EventStart:
		sounds = []string{"Question", "Beep"}
	default:
		sounds = []string{"Beep"}
	}

	cmds := make([]command, 0, len(sounds))
	for _, s := range sounds {
		cmds = append(cmds, command{name: "powershell", args: []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"}})
	}
	return cmds
}
