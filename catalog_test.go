package postdex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedlab/postdex/postdex_errors"
	"github.com/feedlab/postdex/utils"
)

func demoCatalog(t *testing.T, opts Options) *Catalog {
	t.Helper()
	opts.Logger = utils.NopLogger{}
	c := NewCatalog(opts)
	for _, p := range []struct {
		id      int64
		ts      string
		content string
		author  string
		views   int64
	}{
		{1, "2024-04-13 01:00:00", "Check out this Sunset photo!", "Asma", 100},
		{2, "2024-04-14 11:00:00", "New Youtube Video", "Brook", 15000},
		{3, "2024-04-14 12:30:00", "New song released", "Taylor", 22000},
		{4, "2024-04-15 13:00:00", "Photo dump from my Paris Trip", "Alice", 1200},
	} {
		_, err := c.Add(p.id, p.ts, p.content, p.author, p.views)
		assert.NoError(t, err)
	}
	return c
}

func ids(recs []*Record) []int64 {
	out := make([]int64, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Id)
	}
	return out
}

func TestCatalog_EndToEnd(t *testing.T) {
	c := demoCatalog(t, Options{})
	assert.Equal(t, 4, c.Len())

	top, ok := c.MostViewed()
	assert.True(t, ok)
	assert.Equal(t, int64(3), top.Id)
	assert.Equal(t, int64(22000), top.Views)

	_, ok = c.FindByTimestamp("2024-04-16 11:00:00")
	assert.False(t, ok)

	rec, ok := c.FindByTimestamp("2024-04-14 11:00:00")
	assert.True(t, ok)
	assert.Equal(t, int64(2), rec.Id)
	assert.Equal(t, int64(15000), rec.Views)

	got := c.FindInRange("2024-04-14 12:00:00", "2024-04-16 12:00:00")
	assert.ElementsMatch(t, []int64{3, 4}, ids(got))

	assert.Equal(t, []int64{3, 2, 4, 1}, ids(c.ListByViews()))
}

func TestCatalog_EmptyState(t *testing.T) {
	c := NewCatalog(Options{Logger: utils.NopLogger{}})

	_, ok := c.FindByTimestamp("2024-04-14 11:00:00")
	assert.False(t, ok)
	assert.Empty(t, c.FindInRange("2024-01-01 00:00:00", "2025-01-01 00:00:00"))
	_, ok = c.MostViewed()
	assert.False(t, ok)
	_, err := c.ExtractMostViewed()
	assert.ErrorIs(t, err, postdex_errors.ErrEmptyIndex)
	assert.Empty(t, c.ListByViews())
	assert.Equal(t, 0, c.Len())
}

func TestCatalog_FanOutConsistency(t *testing.T) {
	c := NewCatalog(Options{Logger: utils.NopLogger{}})
	for i := int64(0); i < 50; i++ {
		ts := fmt.Sprintf("2024-05-%02d 10:00:00", i%25+1)
		_, err := c.Add(i, ts, "content", "author", i*7%13)
		assert.NoError(t, err)
	}

	desc := c.ListByViews()
	assert.Len(t, desc, 50)
	seen := map[int64]int{}
	for _, r := range desc {
		seen[r.Id]++
	}

	wide := ids(c.FindInRange("2024-05-01 00:00:00", "2024-05-31 23:59:59"))
	for _, r := range desc {
		// Exactly once in the descending listing.
		assert.Equal(t, 1, seen[r.Id])

		// Reachable by point lookup (first-inserted wins on duplicates,
		// so the lookup may answer with an earlier record for the same
		// timestamp, but it never misses).
		found, ok := c.FindByTimestamp(r.Timestamp)
		assert.True(t, ok)
		assert.Equal(t, r.Timestamp, found.Timestamp)

		// Reachable by a range containing its timestamp.
		assert.Contains(t, wide, r.Id)
	}
}

func TestCatalog_DuplicateTimestampFirstWins(t *testing.T) {
	c := NewCatalog(Options{Logger: utils.NopLogger{}})
	_, err := c.Add(1, "2024-04-14 11:00:00", "first", "a", 10)
	assert.NoError(t, err)
	_, err = c.Add(2, "2024-04-14 11:00:00", "second", "b", 20)
	assert.NoError(t, err)

	rec, ok := c.FindByTimestamp("2024-04-14 11:00:00")
	assert.True(t, ok)
	assert.Equal(t, int64(1), rec.Id)

	// The second record stays in the chain and in the other two indexes.
	// Pinning the range end at the shared timestamp prunes the duplicate;
	// a wider range reaches it.
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int64{1}, ids(c.FindInRange("2024-04-14 11:00:00", "2024-04-14 11:00:00")))
	assert.ElementsMatch(t, []int64{1, 2}, ids(c.FindInRange("2024-04-14 11:00:00", "2024-04-14 11:00:01")))
	assert.Equal(t, []int64{2, 1}, ids(c.ListByViews()))
}

func TestCatalog_RangeInclusivity(t *testing.T) {
	c := demoCatalog(t, Options{})

	got := c.FindInRange("2024-04-14 11:00:00", "2024-04-14 12:30:00")
	assert.ElementsMatch(t, []int64{2, 3}, ids(got))

	// Just outside either end.
	got = c.FindInRange("2024-04-14 11:00:01", "2024-04-14 12:29:59")
	assert.Empty(t, got)
}

func TestCatalog_ExtractMostViewed(t *testing.T) {
	c := demoCatalog(t, Options{})

	peeked, ok := c.MostViewed()
	assert.True(t, ok)
	popped, err := c.ExtractMostViewed()
	assert.NoError(t, err)
	assert.Equal(t, peeked, popped)

	next, ok := c.MostViewed()
	assert.True(t, ok)
	assert.Equal(t, int64(2), next.Id)

	// Extraction only affects the priority index; point and range lookups
	// still reach the record.
	_, ok = c.FindByTimestamp(popped.Timestamp)
	assert.True(t, ok)
}

func TestCatalog_InvalidRecordNoPartialInsert(t *testing.T) {
	c := NewCatalog(Options{Logger: utils.NopLogger{}})
	_, err := c.Add(1, "2024-04-13 01:00:00", "x", "y", -5)
	assert.ErrorIs(t, err, postdex_errors.ErrInvalidRecord)

	assert.Equal(t, 0, c.Len())
	_, ok := c.FindByTimestamp("2024-04-13 01:00:00")
	assert.False(t, ok)
	assert.Empty(t, c.FindInRange("2024-04-13 01:00:00", "2024-04-13 01:00:00"))
	_, ok = c.MostViewed()
	assert.False(t, ok)
}

func TestCatalog_Closed(t *testing.T) {
	c := demoCatalog(t, Options{})
	assert.NoError(t, c.Close())

	_, err := c.Add(9, "2024-04-20 00:00:00", "late", "z", 1)
	assert.ErrorIs(t, err, postdex_errors.ErrClosed)

	// Queries keep answering over the pre-close contents.
	assert.Equal(t, 4, c.Len())
	top, ok := c.MostViewed()
	assert.True(t, ok)
	assert.Equal(t, int64(3), top.Id)
}

func TestCatalog_BalancedOrdered(t *testing.T) {
	c := demoCatalog(t, Options{Balanced: true})

	// The balanced ordered index returns range results sorted ascending.
	got := c.FindInRange("2024-04-13 00:00:00", "2024-04-16 00:00:00")
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))

	got = c.FindInRange("2024-04-14 12:00:00", "2024-04-16 12:00:00")
	assert.Equal(t, []int64{3, 4}, ids(got))
}

func TestCatalog_RangeCachePurgedOnAdd(t *testing.T) {
	c := demoCatalog(t, Options{})

	first := c.FindInRange("2024-04-13 00:00:00", "2024-04-16 00:00:00")
	again := c.FindInRange("2024-04-13 00:00:00", "2024-04-16 00:00:00")
	assert.Equal(t, ids(first), ids(again))

	_, err := c.Add(5, "2024-04-15 14:00:00", "fresh", "Noor", 3)
	assert.NoError(t, err)

	after := c.FindInRange("2024-04-13 00:00:00", "2024-04-16 00:00:00")
	assert.Contains(t, ids(after), int64(5))
}

func TestCatalog_TinyBucketCount(t *testing.T) {
	// All timestamps collide; every lookup still resolves.
	c := demoCatalog(t, Options{BucketCount: 1})
	for _, ts := range []string{
		"2024-04-13 01:00:00",
		"2024-04-14 11:00:00",
		"2024-04-14 12:30:00",
		"2024-04-15 13:00:00",
	} {
		_, ok := c.FindByTimestamp(ts)
		assert.True(t, ok)
	}
}
