//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"hotel-board/cmd/bootstrap"
	"hotel-board/cmd/bootstrap/components"
	"hotel-board/internal/pkg/config"
	"hotel-board/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *redis.Client, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := dbtest.StartPostgres(t)
	client, redisConfig := dbtest.StartRedis(t)

	router, cfg, app := buildE2EApp(pool, client, dbConfig, redisConfig)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return pool, client, router, cfg
}

// ------------------------------------------------------------
// application wiring with the test containers in place of the real clients
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, client *redis.Client, dbConfig config.DBConfig, redisConfig config.RedisConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testStoreModule := fx.Module("teststore",
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() redis.Cmdable { return client },
		),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			testConfig := config.NewTestConfig()
			testConfig.DB = dbConfig
			testConfig.Redis = redisConfig
			return testConfig
		}),
	)

	app := fx.New(
		testStoreModule,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// shared setup of the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, client, router, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Redis = client
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "Failed to flush redis")
}
