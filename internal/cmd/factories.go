package cmd

import (
	"math/rand/v2"
	"time"

	adapteractivitywatch "focusboss/internal/adapters/activitywatch"
	adapterapi "focusboss/internal/adapters/api"
	adapterclock "focusboss/internal/adapters/clock"
	adapteropenai "focusboss/internal/adapters/openai"
	adapterpersonas "focusboss/internal/adapters/personas"
	adaptersound "focusboss/internal/adapters/sound"
	adapterstorage "focusboss/internal/adapters/storage"
	"focusboss/internal/config"
	"focusboss/internal/logging"
	"focusboss/internal/ports"
	"focusboss/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	ActivitySource ports.ActivitySource
	Catalog        ports.PersonaCatalog
	Clock          ports.Clock
	Generator      *adapteropenai.Generator

	// Services
	HistoryService      *services.HistoryService
	NotificationService *services.NotificationService
	PreferencesService  *services.PreferencesService
	Tracker             *services.SessionTracker

	settings *config.Settings

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(settings.GetDBPath())
	if err != nil {
		return nil, err
	}

	catalog, err := adapterpersonas.Load(settings.GetPersonasFile())
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	timeout := settings.GetUpstreamTimeout()
	activity := adapteractivitywatch.NewClient(settings.GetActivityWatchURL(), timeout)
	generator := adapteropenai.NewGenerator(adapteropenai.Config{
		APIKey:  settings.GetOpenAIAPIKey(),
		BaseURL: settings.OpenAIBaseURL,
		Model:   settings.OpenAIModel,
		Timeout: timeout,
	})
	if !generator.Available() {
		logging.Logger.Info("No OpenAI API key configured, using canned persona messages")
	}

	clock := adapterclock.SystemClock{}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	resolver := services.NewMessageResolver(generator, rng, timeout)

	return &Container{
		ActivitySource:      activity,
		Catalog:             catalog,
		Clock:               clock,
		Generator:           generator,
		HistoryService:      services.NewHistoryService(repo),
		NotificationService: services.NewNotificationService(adaptersound.NewPlayer(), settings.IsSoundEnabled()),
		PreferencesService:  services.NewPreferencesService(repo),
		Tracker:             services.NewSessionTracker(activity, catalog, repo, repo, resolver, clock, timeout),
		settings:            settings,
		repo:                repo,
	}, nil
}

// NewAPIClient returns a client for the server at addr, or the configured listen address
func (c *Container) NewAPIClient(addr string) ports.FocusAPI {
	if addr == "" {
		addr = c.settings.GetListenAddr()
	}
	// Ending a day may wait on report generation
	return adapterapi.NewClient(addr, c.settings.GetUpstreamTimeout()+10*time.Second)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
