package deps

import (
	"context"
	"letsconnect/internal/config"
	"letsconnect/internal/core/domain/attempt"
	"letsconnect/internal/core/domain/identity"
	dl "letsconnect/internal/core/domain/logging"
	drl "letsconnect/internal/core/domain/rate_limiter"
	dbattempt "letsconnect/internal/db/attempt"
	"letsconnect/internal/implementations/logging"
	"letsconnect/internal/implementations/parse"
	ratelimiter "letsconnect/internal/implementations/rate_limiter"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	Parse             *parse.Client
	IdentityService   identity.Service
	AttemptRepository attempt.Repository
	RateLimiter       drl.RateLimiter
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.AttemptRepository = dbattempt.NewPgxRepository(deps.DB)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.Parse = parse.New(deps.Logger, parse.Config{
		ServerURL:     deps.Config.ParseServerURL,
		ApplicationID: deps.Config.ParseApplicationID,
		RESTAPIKey:    deps.Config.ParseRESTAPIKey,
		Timeout:       deps.Config.ParseRequestTimeout,
	})
	deps.IdentityService = deps.Parse
	deps.pingParse()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()

		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

// pingParse only logs: the app keeps serving when the start-up query fails.
func (deps *Deps) pingParse() {
	if deps.Config.ParsePingClass == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ParseRequestTimeout)
	defer cancel()
	deps.Parse.Ping(ctx, deps.Config.ParsePingClass)
}
