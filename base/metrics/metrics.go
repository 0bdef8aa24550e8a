/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/x-xyz/marketclient/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix. Metrics are only
// written to the debug log when datadog_host is not configured.
func New(pkgName string) Service {
	tags := []string{
		"host:", // drop the agent host tag
		"env:" + env.EnvName(),
		"app:" + viper.GetString("app_name"),
	}
	if pod := env.PodName(); len(pod) > 0 {
		tags = append(tags, "pod:"+pod)
	}
	return &Metrics{
		pkgName: pkgName,
		client:  defaultClient(),
		tags:    tags,
	}
}

// Metrics prefixes every key with its package name.
type Metrics struct {
	pkgName string
	client  statsCli
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpavg.panic", key, tags)
	if err := mt.client.Gauge(mt.key(key), val, mt.withTags(tags), 1); err != nil {
		mt.logBumpErr(err, key, "BumpAvg")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum.panic", key, tags)
	if err := mt.client.Count(mt.key(key), int64(val), mt.withTags(tags), 1); err != nil {
		mt.logBumpErr(err, key, "BumpSum")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram.panic", key, tags)
	if err := mt.client.Histogram(mt.key(key), val, mt.withTags(tags), 1); err != nil {
		mt.logBumpErr(err, key, "BumpHistogram")
	}
}

// BumpTime starts a timer and reports its duration once End is called:
//
//     defer s.BumpTime("reconcile.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start:  timeNow(),
		key:    mt.key(key),
		tags:   mt.withTags(tags),
		client: mt.client,
	}
}

func (mt *Metrics) recoverBump(panicKey, key string, tags []string) {
	if err := recover(); err != nil {
		_ = mt.client.Count(panicKey, 1, append(mt.tags, "tag:"+mt.key(key)+"#"+strings.Join(tags, "#")), 1)
	}
}

func (mt *Metrics) withTags(tags []string) []string {
	parsed := parseTag(tags)
	res := make([]string, 0, len(mt.tags)+len(parsed))
	res = append(res, mt.tags...)
	return append(res, parsed...)
}
