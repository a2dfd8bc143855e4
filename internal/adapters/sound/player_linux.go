//go:build linux

package sound

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// candidates returns paplay (PulseAudio) then aplay (ALSA) commands for the event
func candidates(eventType string) []command {
	var name string

	switch eventType {
	case EventDistraction:
		name = "dialog-warning"
	case EventIdle:
		name = "message"
	case EventStart:
		name = "service-login"
	case EventEnd:
		name = "complete"
	default:
		name = "bell"
	}

	return []command{
		{name: "paplay", args: []string{freedesktopSounds + name + ".oga"}},
		{name: "aplay", args: []string{freedesktopSounds + name + ".wav"}},
		{name: "paplay", args: []string{freedesktopSounds + "bell.oga"}},
	}
}
