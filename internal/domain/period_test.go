package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountPeriod_SplitsWorkDistractionIdle(t *testing.T) {
	events := []ActivityEvent{
		{AppName: "code", Title: "tracker.go", Duration: 120 * time.Second},
		{AppName: "firefox", Title: "YouTube", Duration: 60 * time.Second},
	}

	totals := AccountPeriod(300*time.Second, events)

	assert.Equal(t, 180*time.Second, totals.Active)
	assert.Equal(t, 60*time.Second, totals.Distraction)
	assert.Equal(t, 120*time.Second, totals.Idle)
	assert.Equal(t, 120*time.Second, totals.Work())
	assert.Equal(t, "YouTube", totals.TopDistraction)
}

func TestAccountPeriod_SkipsNonPositiveDurations(t *testing.T) {
	events := []ActivityEvent{
		{AppName: "youtube", Duration: 0},
		{AppName: "reddit", Duration: -30 * time.Second},
		{AppName: "code", Duration: 10 * time.Second},
	}

	totals := AccountPeriod(60*time.Second, events)

	assert.Equal(t, 10*time.Second, totals.Active)
	assert.Zero(t, totals.Distraction)
	assert.Equal(t, 50*time.Second, totals.Idle)
	assert.Empty(t, totals.TopDistraction)
}

func TestAccountPeriod_OverlappingEventsClampIdle(t *testing.T) {
	events := []ActivityEvent{
		{AppName: "code", Duration: 90 * time.Second},
		{AppName: "discord", Duration: 90 * time.Second},
	}

	totals := AccountPeriod(120*time.Second, events)

	assert.Equal(t, 180*time.Second, totals.Active, "active is not clamped to the window")
	assert.Zero(t, totals.Idle)
}

func TestAccountPeriod_NoEventsIsAllIdle(t *testing.T) {
	totals := AccountPeriod(200*time.Second, nil)

	assert.Zero(t, totals.Active)
	assert.Equal(t, 200*time.Second, totals.Idle)
}

func TestAccountPeriod_TopDistractionIsLongest(t *testing.T) {
	events := []ActivityEvent{
		{AppName: "reddit", Duration: 30 * time.Second},
		{AppName: "steam", Duration: 90 * time.Second},
		{AppName: "youtube", Duration: 60 * time.Second},
	}

	totals := AccountPeriod(180*time.Second, events)

	assert.Equal(t, "gaming", totals.TopDistraction)
}

func TestPeriodTotals_WorkNeverNegative(t *testing.T) {
	p := PeriodTotals{Active: 10 * time.Second, Distraction: 40 * time.Second}
	assert.Zero(t, p.Work())
}
