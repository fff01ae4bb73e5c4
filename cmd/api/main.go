package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/meetspace/meetspace/modules/administration"
	"github.com/meetspace/meetspace/modules/meetings"
	"github.com/meetspace/meetspace/modules/payments"
	"github.com/meetspace/meetspace/modules/useraccess"
	"github.com/meetspace/meetspace/pkg/authn"
	"github.com/meetspace/meetspace/pkg/authz"
	"github.com/meetspace/meetspace/pkg/bootstrap"
	"github.com/meetspace/meetspace/pkg/config"
	"github.com/meetspace/meetspace/pkg/email"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/httpserver"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/pg"
	"github.com/meetspace/meetspace/pkg/problem"
	"github.com/meetspace/meetspace/pkg/redis"
	"github.com/meetspace/meetspace/pkg/requestid"
	"github.com/meetspace/meetspace/pkg/secrets"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"meetspace-api"`

	// EncryptKey is the base64-encoded 32-byte application encryption key.
	EncryptKey string `env:"APP_ENCRYPT_KEY,required"`
}

// publicPaths lists endpoints reachable without a token.
var publicPaths = map[string]bool{
	"/healthz":             true,
	"/useraccess/register": true,
	"/useraccess/login":    true,
}

func main() {
	ctx := context.Background()

	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	encryptKey, err := base64.StdEncoding.DecodeString(appCfg.EncryptKey)
	if err != nil || len(encryptKey) != secrets.KeySize {
		log.Error("APP_ENCRYPT_KEY must be 32 bytes, base64-encoded", logger.Error(err))
		os.Exit(1)
	}

	var pgCfg pg.Config
	config.MustLoad(&pgCfg)
	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		log.Error("database connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	var redisCfg redis.Config
	config.MustLoad(&redisCfg)
	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("redis connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer redisClient.Close()

	var tokenCfg authn.Config
	config.MustLoad(&tokenCfg)
	tokens, err := authn.NewTokenService(tokenCfg)
	if err != nil {
		log.Error("token service init failed", logger.Error(err))
		os.Exit(1)
	}

	var emailCfg email.Config
	config.MustLoad(&emailCfg)
	sender, err := buildEmailSender(emailCfg)
	if err != nil {
		log.Error("email sender init failed", logger.Error(err))
		os.Exit(1)
	}

	infra := &bootstrap.Infra{
		ConnString:  pgCfg.ConnString,
		DB:          pool,
		Redis:       redisClient,
		ExecCtx:     execctx.NewAccessor(),
		Log:         log,
		Email:       sender,
		EmailConfig: emailCfg,
		Tokens:      tokens,
		Policies:    authz.NewPolicies(),
		Problems:    problem.NewMapper(log),
		EncryptKey:  encryptKey,
	}

	userAccess := useraccess.NewModule()
	moduleList := []bootstrap.Module{
		userAccess,
		meetings.NewModule(),
		administration.NewModule(),
		payments.NewModule(),
	}

	if err := bootstrap.Compose(ctx, infra, moduleList...); err != nil {
		log.Error("module composition failed", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(authn.MiddlewareWithConfig(authn.MiddlewareConfig{
		Validator:   tokens,
		Revocations: userAccess.Revocations(),
		Skip:        func(req *http.Request) bool { return publicPaths[req.URL.Path] },
	}))
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	for _, m := range moduleList {
		m.Routes(r)
	}

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)
	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))

	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func buildEmailSender(cfg email.Config) (email.EmailSender, error) {
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		return email.NewPostmarkClient(cfg)
	}
	return email.NewDevSender(cfg.DevSenderDir), nil
}
