package ratelimiter

import (
	"context"
	"letsconnect/internal/core/domain/logging"
	ratelimiter "letsconnect/internal/core/domain/rate_limiter"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	client  *redis.Client
	logger  *logging.FakeLogger
	now     time.Time
	limiter *Redis
}

func (suite *testSuite) SetupTest() {
	suite.server = miniredis.RunT(suite.T())
	suite.client = redis.NewClient(&redis.Options{Addr: suite.server.Addr(), MaxRetries: -1})
	suite.logger = logging.NewFakeLogger()
	suite.now = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
	suite.limiter = NewRedis(suite.client, suite.logger, func() time.Time { return suite.now })
}

func (suite *testSuite) TearDownTest() {
	suite.client.Close()
}

func TestRedisRateLimiter(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestDeniesAboveLimit() {
	ctx := context.Background()
	limit := ratelimiter.Limit{Value: 3, Interval: ratelimiter.Minute}

	assert := suite.Require()
	for i := 0; i < 3; i++ {
		assert.True(suite.limiter.CheckLimit(ctx, "log-in::john", limit).IsAllowed)
	}
	assert.False(suite.limiter.CheckLimit(ctx, "log-in::john", limit).IsAllowed)
	assert.True(suite.limiter.CheckLimit(ctx, "log-in::jane", limit).IsAllowed)
}

func (suite *testSuite) TestNextWindowIsAllowed() {
	ctx := context.Background()
	limit := ratelimiter.Limit{Value: 1, Interval: ratelimiter.Hour}

	assert := suite.Require()
	assert.True(suite.limiter.CheckLimit(ctx, "sign-up::5551234567", limit).IsAllowed)
	assert.False(suite.limiter.CheckLimit(ctx, "sign-up::5551234567", limit).IsAllowed)

	suite.now = suite.now.Add(time.Hour)
	assert.True(suite.limiter.CheckLimit(ctx, "sign-up::5551234567", limit).IsAllowed)
}

func (suite *testSuite) TestKeysExpire() {
	ctx := context.Background()
	suite.limiter.CheckLimit(ctx, "log-in::john", ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute})

	assert := suite.Require()
	keys := suite.server.Keys()
	assert.Len(keys, 1)
	assert.Equal(time.Minute, suite.server.TTL(keys[0]))
}

func (suite *testSuite) TestFailsOpen() {
	suite.server.Close()

	result := suite.limiter.CheckLimit(
		context.Background(),
		"log-in::john",
		ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute},
	)

	assert := suite.Require()
	assert.True(result.IsAllowed)
	assert.True(suite.logger.Has(logging.ERROR, "Could not check rate limit due to Redis client error."))
}
