package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"focusboss/internal/domain"
	portsmocks "focusboss/internal/ports/mocks"
)

func TestShouldPlaySound(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		eventType string
		want      bool
	}{
		{name: "distraction", enabled: true, eventType: "distraction", want: true},
		{name: "idle", enabled: true, eventType: "idle", want: true},
		{name: "start", enabled: true, eventType: "start", want: true},
		{name: "end", enabled: true, eventType: "end", want: true},
		{name: "unknown event", enabled: true, eventType: "stop", want: false},
		{name: "disabled", enabled: false, eventType: "distraction", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), tt.enabled)
			assert.Equal(t, tt.want, service.ShouldPlaySound(tt.eventType))
		})
	}
}

func TestNotifyNudge_PlaysMappedSound(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent("idle").Return(nil).Once()
	player.EXPECT().PlaySoundForEvent("distraction").Return(errors.New("no audio device")).Once()

	service := NewNotificationService(player, true)
	service.NotifyNudge(domain.NudgeIdle)
	service.NotifyNudge(domain.NudgeDistraction)
	service.NotifyNudge("")
}

func TestNotifyDay_Disabled(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)

	NewNotificationService(player, false).NotifyDay("start")

	player.AssertNotCalled(t, "PlaySoundForEvent", "start")
}
