package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/base/log"
)

const (
	// DdPort is the dogstatsd agent port
	DdPort = 8125
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
	timeNow  = time.Now
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// defaultClient dials the datadog agent once per process
func defaultClient() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if len(host) == 0 {
			ddClient = &LogClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, DdPort)
		client, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent")
			ddClient = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		ddClient = client
	})
	return ddClient
}

func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start  time.Time
	key    string
	tags   []string
	client statsCli
}

func (t *timeTracker) End() {
	d := timeNow().Sub(t.start)
	dur := float64(d) / float64(time.Millisecond)
	if err := t.client.TimeInMilliseconds(t.key, dur, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}

func (mt *Metrics) logBumpErr(err error, key, fn string) {
	log.Log().WithFields(log.Fields{"err": err, "key": mt.key(key), "func": fn}).Error("Bump fail")
}
