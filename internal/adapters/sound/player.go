package sound

import (
	"io"
	"os"
	"os/exec"

	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// Event names understood by the player
const (
	EventDistraction = "distraction"
	EventEnd         = "end"
	EventIdle        = "idle"
	EventStart       = "start"
)

// command is one way of producing a sound on the current platform
type command struct {
	args []string
	name string
}

// Player implements ports.SoundPlayer with the platform's stock sounds,
// falling back to a terminal bell when no player is available
type Player struct {
	bell io.Writer
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player that rings the bell on stdout
func NewPlayer() *Player {
	return &Player{bell: os.Stdout}
}

// PlaySound plays the generic nudge sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventDistraction)
}

// PlaySoundForEvent plays the sound for an event type.
// Candidates come from the platform file (player_*.go); the first that runs wins.
func (p *Player) PlaySoundForEvent(eventType string) error {
	for _, c := range candidates(eventType) {
		cmd := exec.Command(c.name, c.args...)
		err := cmd.Run()
		if err == nil {
			return nil
		}
		logging.Logger.Debug("Sound command failed", "command", c.name, "error", err)
	}
	return p.terminalBell()
}

func (p *Player) terminalBell() error {
	_, err := io.WriteString(p.bell, "\a")
	return err
}
