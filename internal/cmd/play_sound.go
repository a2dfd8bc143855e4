package cmd

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Sound event to play" enum:"distraction,idle,start,end" default:"distraction"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	cli.Container.NotificationService.NotifyDay(p.Event)
	return nil
}
