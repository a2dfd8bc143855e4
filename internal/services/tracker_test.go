package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"focusboss/internal/domain"
	"focusboss/internal/ports"
	portsmocks "focusboss/internal/ports/mocks"
)

var dayStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fixedRandom struct {
	n int
}

func (r fixedRandom) IntN(n int) int { return r.n % n }

func testPersona() domain.Persona {
	return domain.Persona{
		ID:     "coach",
		Name:   "Coach",
		Prompt: "You are a tough but fair coach.",
		Messages: map[domain.NudgeKind][]string{
			domain.NudgeDistraction: {"Eyes on the prize!", "Back to it, champ."},
			domain.NudgeIdle:        {"Still there? Let's move."},
		},
	}
}

type trackerDeps struct {
	activity  *portsmocks.MockActivitySource
	catalog   *portsmocks.MockPersonaCatalog
	clock     *fixedClock
	dayLogs   *portsmocks.MockDayLogRepository
	generator *portsmocks.MockMessageGenerator
	prefs     *portsmocks.MockPreferencesRepository
}

func newTestTracker(t *testing.T) (*SessionTracker, *trackerDeps) {
	t.Helper()

	deps := &trackerDeps{
		activity:  portsmocks.NewMockActivitySource(t),
		catalog:   portsmocks.NewMockPersonaCatalog(t),
		clock:     &fixedClock{now: dayStart},
		dayLogs:   portsmocks.NewMockDayLogRepository(t),
		generator: portsmocks.NewMockMessageGenerator(t),
		prefs:     portsmocks.NewMockPreferencesRepository(t),
	}

	resolver := NewMessageResolver(deps.generator, fixedRandom{n: 0}, time.Second)
	tracker := NewSessionTracker(deps.activity, deps.catalog, deps.prefs, deps.dayLogs, resolver, deps.clock, time.Second)
	return tracker, deps
}

// startTestDay starts a day for the coach persona with consent and a 15 minute interval
func startTestDay(t *testing.T, tracker *SessionTracker, deps *trackerDeps) {
	t.Helper()

	persona := testPersona()
	deps.catalog.EXPECT().Lookup("coach").Return(&persona, true).Once()
	deps.prefs.EXPECT().GetPreferences(mock.Anything).
		Return(&domain.Preferences{ConsentGiven: true, NotificationIntervalMinutes: 15}, nil).Once()
	deps.prefs.EXPECT().SetLastPersona(mock.Anything, "coach").Return(nil).Once()

	_, err := tracker.StartDay(context.Background(), "coach", "finish report")
	require.NoError(t, err)
}

func generatorUnavailable(deps *trackerDeps) {
	deps.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
		Return("", ports.ErrGeneratorUnavailable).Maybe()
}

func TestStartDay_CreatesSession(t *testing.T) {
	tracker, deps := newTestTracker(t)
	persona := testPersona()

	deps.catalog.EXPECT().Lookup("coach").Return(&persona, true)
	deps.prefs.EXPECT().GetPreferences(mock.Anything).
		Return(&domain.Preferences{ConsentGiven: true, NotificationIntervalMinutes: 20}, nil)
	deps.prefs.EXPECT().SetLastPersona(mock.Anything, "coach").Return(nil)

	result, err := tracker.StartDay(context.Background(), "coach", "ship it")

	require.NoError(t, err)
	assert.Equal(t, "coach", result.PersonaID)
	assert.Equal(t, "Coach", result.PersonaName)
	assert.Equal(t, dayStart, result.StartedAt)

	snap, err := tracker.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "ship it", snap.Goals)
	assert.Equal(t, dayStart, snap.LastCheck)
	assert.Zero(t, snap.Totals)
	assert.Equal(t, 20*time.Minute, tracker.session.NextDistractionThreshold)
}

func TestStartDay_TwiceFailsWithSessionAlreadyActive(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	_, err := tracker.StartDay(context.Background(), "coach", "again")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyActive)
	assert.ErrorIs(t, err, domain.ErrStateConflict)
}

func TestStartDay_UnknownPersona(t *testing.T) {
	tracker, deps := newTestTracker(t)
	deps.catalog.EXPECT().Lookup("pirate").Return(nil, false)

	_, err := tracker.StartDay(context.Background(), "pirate", "")

	assert.ErrorIs(t, err, domain.ErrUnknownPersona)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, snapErr := tracker.Snapshot()
	assert.ErrorIs(t, snapErr, domain.ErrNoActiveSession)
}

func TestStartDay_ConsentRequired(t *testing.T) {
	tracker, deps := newTestTracker(t)
	persona := testPersona()
	deps.catalog.EXPECT().Lookup("coach").Return(&persona, true)
	deps.prefs.EXPECT().GetPreferences(mock.Anything).Return(&domain.Preferences{ConsentGiven: false}, nil)

	_, err := tracker.StartDay(context.Background(), "coach", "")

	assert.ErrorIs(t, err, domain.ErrConsentRequired)
}

func TestStartDay_PreferencesError(t *testing.T) {
	tracker, deps := newTestTracker(t)
	persona := testPersona()
	deps.catalog.EXPECT().Lookup("coach").Return(&persona, true)
	deps.prefs.EXPECT().GetPreferences(mock.Anything).Return(nil, errors.New("database locked"))

	_, err := tracker.StartDay(context.Background(), "coach", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database locked")
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestStartDay_LastPersonaFailureIsAbsorbed(t *testing.T) {
	tracker, deps := newTestTracker(t)
	persona := testPersona()
	deps.catalog.EXPECT().Lookup("coach").Return(&persona, true)
	deps.prefs.EXPECT().GetPreferences(mock.Anything).Return(&domain.Preferences{ConsentGiven: true}, nil)
	deps.prefs.EXPECT().SetLastPersona(mock.Anything, "coach").Return(errors.New("disk full"))

	_, err := tracker.StartDay(context.Background(), "coach", "")

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, tracker.session.NotificationInterval, "default interval applies")
}

func TestPollStatus_NoActiveSession(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, err := tracker.PollStatus(context.Background(), dayStart.Add(time.Minute))

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestPollStatus_SubSecondPollIsNoOp(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	first, err := tracker.PollStatus(context.Background(), dayStart.Add(500*time.Millisecond))
	require.NoError(t, err)
	second, err := tracker.PollStatus(context.Background(), dayStart.Add(900*time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, first.Message)
	assert.Zero(t, first.Totals)
	assert.Equal(t, dayStart, tracker.session.LastCheck)
}

func TestPollStatus_EndToEndDistraction(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)

	firstPoll := dayStart.Add(400 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, firstPoll).
		Return([]domain.ActivityEvent{{AppName: "youtube", Duration: 400 * time.Second}}, nil).Once()

	status, err := tracker.PollStatus(context.Background(), firstPoll)
	require.NoError(t, err)

	work, distraction, idle := status.Totals.Seconds()
	assert.Equal(t, 0, work)
	assert.Equal(t, 400, distraction)
	assert.Equal(t, 0, idle)
	assert.Empty(t, status.Message, "400s is below the 900s threshold")

	secondPoll := firstPoll.Add(550 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, firstPoll, secondPoll).
		Return([]domain.ActivityEvent{{AppName: "firefox", Title: "reddit", Duration: 550 * time.Second}}, nil).Once()

	status, err = tracker.PollStatus(context.Background(), secondPoll)
	require.NoError(t, err)

	_, distraction, _ = status.Totals.Seconds()
	assert.Equal(t, 950, distraction)
	assert.Equal(t, domain.NudgeDistraction, status.NudgeKind)
	assert.Equal(t, "Eyes on the prize!", status.Message)
	assert.Equal(t, 30*time.Minute, tracker.session.NextDistractionThreshold)
}

func TestPollStatus_IdleNudgeDebounced(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)
	deps.activity.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	var messages []string
	for i := 1; i <= 3; i++ {
		status, err := tracker.PollStatus(context.Background(), dayStart.Add(time.Duration(i)*200*time.Second))
		require.NoError(t, err)
		messages = append(messages, status.Message)
	}

	assert.Equal(t, []string{"", "Still there? Let's move.", ""}, messages)
	assert.Equal(t, 600*time.Second, tracker.session.IdleTime)
}

func TestPollStatus_IdlePromptIncludesGoals(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	now := dayStart.Add(400 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, now).Return(nil, nil).Once()

	var prompt string
	deps.generator.EXPECT().Generate(mock.Anything, "You are a tough but fair coach.", mock.Anything).
		Run(func(ctx context.Context, systemPrompt, userPrompt string) { prompt = userPrompt }).
		Return("Up and at it.", nil).Once()

	status, err := tracker.PollStatus(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, domain.NudgeIdle, status.NudgeKind)
	assert.Equal(t, "Up and at it.", status.Message)
	assert.Contains(t, prompt, "User's goal: finish report.")
	assert.NotContains(t, prompt, "not specified")
}

func TestPollStatus_ActivityRearmsIdleNudge(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)

	t1 := dayStart.Add(400 * time.Second)
	t2 := t1.Add(60 * time.Second)
	t3 := t2.Add(300 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, t1).Return(nil, nil).Once()
	deps.activity.EXPECT().Query(mock.Anything, t1, t2).
		Return([]domain.ActivityEvent{{AppName: "code", Duration: 30 * time.Second}}, nil).Once()
	deps.activity.EXPECT().Query(mock.Anything, t2, t3).Return(nil, nil).Once()

	s1, err := tracker.PollStatus(context.Background(), t1)
	require.NoError(t, err)
	s2, err := tracker.PollStatus(context.Background(), t2)
	require.NoError(t, err)
	s3, err := tracker.PollStatus(context.Background(), t3)
	require.NoError(t, err)

	assert.Equal(t, domain.NudgeIdle, s1.NudgeKind)
	assert.Empty(t, s2.Message)
	assert.Equal(t, domain.NudgeIdle, s3.NudgeKind)
	assert.NotEmpty(t, s3.Message)
}

func TestPollStatus_ActivityFailureDegradesToIdle(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	now := dayStart.Add(2 * time.Minute)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, now).Return(nil, errors.New("connection refused"))

	status, err := tracker.PollStatus(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, status.Totals.Idle)
	assert.Empty(t, status.Message)
	assert.Equal(t, now, tracker.session.LastCheck)
}

func TestPollStatus_UsesGeneratedMessage(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)
	tracker.session.DistractionTime = 890 * time.Second

	now := dayStart.Add(20 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, now).
		Return([]domain.ActivityEvent{{AppName: "firefox", Title: "Trailer - YouTube", Duration: 20 * time.Second}}, nil)
	deps.generator.EXPECT().
		Generate(mock.Anything, "You are a tough but fair coach.", mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, "distracted by YouTube for about 15 minutes") &&
				assert.Contains(t, prompt, "finish report")
		})).
		Return("  Close the tab and get back to the report.  ", nil)

	status, err := tracker.PollStatus(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "Close the tab and get back to the report.", status.Message)
}

func TestPollStatus_GeneratorErrorFallsBackToGenericWhenNoCanned(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)
	tracker.session.Persona.Messages = nil
	tracker.session.DistractionTime = 900 * time.Second

	now := dayStart.Add(10 * time.Second)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, now).Return(nil, nil)
	deps.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	status, err := tracker.PollStatus(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, GenericDistractionMessage, status.Message)
}

func TestPollStatus_TotalsEqualElapsedWithoutOverlap(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)

	polls := []struct {
		window time.Duration
		events []domain.ActivityEvent
	}{
		{60 * time.Second, []domain.ActivityEvent{{AppName: "code", Duration: 45 * time.Second}}},
		{120 * time.Second, []domain.ActivityEvent{{AppName: "discord", Duration: 100 * time.Second}, {AppName: "code", Duration: -5 * time.Second}}},
		{30 * time.Second, nil},
		{90 * time.Second, []domain.ActivityEvent{{AppName: "code", Duration: 30 * time.Second}, {AppName: "steam", Duration: 60 * time.Second}}},
	}

	now := dayStart
	var elapsed time.Duration
	var last *StatusResult
	for _, p := range polls {
		start := now
		now = now.Add(p.window)
		elapsed += p.window
		deps.activity.EXPECT().Query(mock.Anything, start, now).Return(p.events, nil).Once()

		status, err := tracker.PollStatus(context.Background(), now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, status.Totals.Idle, time.Duration(0))
		if last != nil {
			assert.GreaterOrEqual(t, status.Totals.Work, last.Totals.Work)
			assert.GreaterOrEqual(t, status.Totals.Distraction, last.Totals.Distraction)
			assert.GreaterOrEqual(t, status.Totals.Idle, last.Totals.Idle)
		}
		last = status
	}

	sum := last.Totals.Work + last.Totals.Distraction + last.Totals.Idle
	assert.Equal(t, elapsed, sum)
	assert.Equal(t, 75*time.Second, last.Totals.Work)
	assert.Equal(t, 160*time.Second, last.Totals.Distraction)
}

func TestPollStatus_ConcurrentPollsAccountOnce(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	now := dayStart.Add(time.Minute)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, now).
		Return([]domain.ActivityEvent{{AppName: "code", Duration: time.Minute}}, nil).Once()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tracker.PollStatus(context.Background(), now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap, err := tracker.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, snap.Totals.Work)
}

func TestEndDay_NoActiveSession(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, err := tracker.EndDay(context.Background(), dayStart)

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestEndDay_FinalAccountingAndLog(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)

	end := dayStart.Add(time.Hour)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, end).
		Return([]domain.ActivityEvent{
			{AppName: "code", Duration: 40 * time.Minute},
			{AppName: "netflix", Duration: 10 * time.Minute},
		}, nil).Once()

	var logged domain.DayLogEntry
	deps.dayLogs.EXPECT().AppendDayLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry domain.DayLogEntry) { logged = entry }).
		Return(nil).Once()

	report, err := tracker.EndDay(context.Background(), end)

	require.NoError(t, err)
	assert.Equal(t, 40*time.Minute, report.Totals.Work)
	assert.Equal(t, 10*time.Minute, report.Totals.Distraction)
	assert.Equal(t, 10*time.Minute, report.Totals.Idle)
	assert.Equal(t, FocusedReport, report.Report)
	assert.Equal(t, "coach", report.PersonaID)

	assert.NotEmpty(t, logged.ID)
	assert.Equal(t, "coach", logged.PersonaID)
	assert.Equal(t, "finish report", logged.Goals)
	assert.Equal(t, 2400, logged.WorkTime)
	assert.Equal(t, 600, logged.DistractionTime)
	assert.Equal(t, 600, logged.IdleTime)
	assert.Equal(t, FocusedReport, logged.Report)
	assert.Equal(t, dayStart, logged.StartedAt)

	_, err = tracker.PollStatus(context.Background(), end.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestEndDay_UnfocusedFallbackReport(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)
	tracker.session.DistractionTime = time.Hour
	tracker.session.WorkTime = 10 * time.Minute

	deps.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout"))
	deps.dayLogs.EXPECT().AppendDayLog(mock.Anything, mock.Anything).Return(nil)

	report, err := tracker.EndDay(context.Background(), dayStart)

	require.NoError(t, err)
	assert.Equal(t, UnfocusedReport, report.Report)
}

func TestEndDay_LogFailureIsAbsorbedAndAllowsRestart(t *testing.T) {
	tracker, deps := newTestTracker(t)
	startTestDay(t, tracker, deps)

	deps.generator.EXPECT().Generate(mock.Anything, mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return assert.Contains(t, prompt, "Provide an end-of-day report as Coach")
	})).Return("Solid day.", nil)
	deps.dayLogs.EXPECT().AppendDayLog(mock.Anything, mock.Anything).Return(errors.New("read-only database"))

	report, err := tracker.EndDay(context.Background(), dayStart)

	require.NoError(t, err)
	assert.Equal(t, "Solid day.", report.Report)

	startTestDay(t, tracker, deps)
}

func TestEndDay_CancelledContextStillCommitsLog(t *testing.T) {
	tracker, deps := newTestTracker(t)
	generatorUnavailable(deps)
	startTestDay(t, tracker, deps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	end := dayStart.Add(30 * time.Minute)
	deps.activity.EXPECT().Query(mock.Anything, dayStart, end).
		RunAndReturn(func(ctx context.Context, start, end time.Time) ([]domain.ActivityEvent, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []domain.ActivityEvent{{AppName: "code", Duration: 30 * time.Minute}}, nil
		}).Once()

	var logged *domain.DayLogEntry
	deps.dayLogs.EXPECT().AppendDayLog(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, entry domain.DayLogEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logged = &entry
			return nil
		}).Once()

	report, err := tracker.EndDay(ctx, end)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, report.Totals.Work)
	require.NotNil(t, logged, "day log must be written")
	assert.Equal(t, 1800, logged.WorkTime)
	assert.Equal(t, "finish report", logged.Goals)

	_, err = tracker.Snapshot()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}
