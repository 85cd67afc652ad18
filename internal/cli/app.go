package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/navigation"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/recruitapi"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/tokenstore"
	"github.com/talentbridge/recruitment-client/pkg/logger"
)

// App holds the services a command runs against.
type App struct {
	Sessions   ports.SessionService
	Students   ports.StudentViews
	Recruiters ports.RecruiterViews
	// Probes are the remote dependencies the portal readiness check pings.
	Probes map[string]ports.Pinger
	Close  func(context.Context) error
}

// Builder assembles an App from configuration.
type Builder func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error)

// Wire is the production Builder: token store, HTTP client, backend wrappers,
// session manager and views.
func Wire(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, closeStore, err := tokenstore.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	history := navigation.NewHistory(log)
	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, store, history, log)
	if err != nil {
		_ = closeStore(ctx)
		return nil, fmt.Errorf("build api client: %w", err)
	}
	api := recruitapi.New(client, recruitapi.PrefixesFrom(cfg.API))

	sessions := service.NewSessionManager(ctx, api.Auth, store, history, logger.Named(log, "session"))
	client.OnUnauthorized(sessions.HandleUnauthorized)

	probes := map[string]ports.Pinger{"backend": client}
	if p, ok := store.(ports.Pinger); ok {
		probes["token_store"] = p
	}

	return &App{
		Sessions:   sessions,
		Students:   service.NewStudentViews(api.Jobs, api.Applications, api.Students, api.AI, logger.Named(log, "student_views")),
		Recruiters: service.NewRecruiterViews(api.Jobs, api.Applications, logger.Named(log, "recruiter_views")),
		Probes:     probes,
		Close:      closeStore,
	}, nil
}
