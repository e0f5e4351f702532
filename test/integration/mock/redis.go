package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts the shared in-process Redis on first use.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})
	return redisServer
}

// RedisURL returns the redis:// address of the shared server.
func RedisURL() string {
	return "redis://" + NewRedis().Addr()
}

// ClearRedis drops every cached key.
func ClearRedis() {
	NewRedis().FlushAll()
}
