package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

var (
	poolMu sync.Mutex

	redisOnce     sync.Once
	redisInitErr  error
	redisResource *dockertest.Resource
	redisClient   *redis.Client
)

// dockerPool returns the process-wide dockertest pool, creating it on first use
func dockerPool() (*dockertest.Pool, error) {
	poolMu.Lock()
	defer poolMu.Unlock()

	if sharedPool != nil {
		return sharedPool, nil
	}
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool
	return pool, nil
}

// SetupRedis starts (once) a shared Redis container and returns a client with an empty keyspace
func SetupRedis(t *testing.T) *redis.Client {
	redisOnce.Do(func() { redisInitErr = initSharedRedisContainer() })
	if redisInitErr != nil {
		t.Fatalf("failed to initialize shared redis container: %v", redisInitErr)
	}
	if err := redisClient.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
	return redisClient
}

func initSharedRedisContainer() error {
	pool, err := dockerPool()
	if err != nil {
		return err
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start redis: %w", err)
	}
	redisResource = resource

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	if err := pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return err
		}
		redisClient = client
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker redis: %w", err)
	}

	log.Printf("Shared Redis ready on %s", addr)
	return nil
}

func cleanupSharedRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
	if sharedPool != nil && redisResource != nil {
		log.Printf("Purging Docker container: %s", redisResource.Container.Name)
		if err := sharedPool.Purge(redisResource); err != nil {
			log.Printf("WARN: could not purge redis resource: %v", err)
		}
		redisResource = nil
	}
}
