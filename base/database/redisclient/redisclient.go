package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketclient/base/backoff"
	"github.com/x-xyz/marketclient/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retries is how many extra dial attempts are made before giving up
	Retries int
}

// ConnectRedis builds a pool for uri and checks it with a PING
func ConnectRedis(ctx context.Context, uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 16
	maxActive := 64
	retries := 0
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		if param[0].PoolMultiplier > 0 {
			// allowing 25% idle connection
			maxIdle = int(cpu * param[0].PoolMultiplier / 4)
			maxActive = int(cpu * param[0].PoolMultiplier)
		}
		retries = param[0].Retries
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	b := backoff.NewExponential(time.Second, 8*time.Second)
	var dialErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := b.Backoff(ctx); err != nil {
				return nil, err
			}
		}
		if dialErr = ping(p); dialErr == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      dialErr,
			"attempt":  attempt,
		}).Error("fail to dial Redis")
	}
	if dialErr != nil {
		return nil, dialErr
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
