package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordClient struct {
	LogClient
	counts map[string]int64
	timers map[string]float64
	tags   [][]string
}

func (r *recordClient) Count(name string, value int64, tags []string, rate float64) error {
	r.counts[name] += value
	r.tags = append(r.tags, tags)
	return nil
}

func (r *recordClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	r.timers[name] = value
	return nil
}

func TestBumps(t *testing.T) {
	req := require.New(t)
	rec := &recordClient{counts: map[string]int64{}, timers: map[string]float64{}}
	mt := &Metrics{pkgName: "catalog", client: rec, tags: []string{"env:test"}}

	mt.BumpSum("reconcile.skipped", 2, "reason", "metadata")
	mt.BumpSum("reconcile.skipped", 1, "reason", "metadata")
	req.Equal(int64(3), rec.counts["catalog.reconcile.skipped"])
	req.Equal([]string{"env:test", "reason:metadata"}, rec.tags[0])

	now := time.Unix(100, 0)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()
	ender := mt.BumpTime("reconcile.time")
	now = now.Add(1500 * time.Microsecond)
	ender.End()
	req.Equal(1.5, rec.timers["catalog.reconcile.time"])
}

func TestOddTagsRecovered(t *testing.T) {
	req := require.New(t)
	rec := &recordClient{counts: map[string]int64{}, timers: map[string]float64{}}
	mt := &Metrics{pkgName: "txn", client: rec}

	req.NotPanics(func() { mt.BumpSum("sent", 1, "odd") })
	req.Equal(int64(1), rec.counts["bumpsum.panic"])
}

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"a:b", "c:d"}, parseTag([]string{"a", "b", "c", "d"}))
}
