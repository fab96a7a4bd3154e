package postdex

import (
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/feedlab/postdex/indexes"
	"github.com/feedlab/postdex/postdex_errors"
	"github.com/feedlab/postdex/utils"
)

type Options struct {
	// BucketCount is the fixed hash index size; the index never resizes.
	BucketCount int

	// Hash overrides the bucket function (default indexes.RuneSum).
	Hash indexes.HashFunc

	// Balanced swaps the unbalanced BST for the B-tree variant. Range
	// results come back sorted instead of in traversal order.
	Balanced bool

	// RangeCacheSize bounds the range-query memo. Negative disables it.
	RangeCacheSize int

	Logger utils.Logger
}

func (o *Options) SetDefaults() {
	if o.BucketCount <= 0 {
		o.BucketCount = indexes.DefaultBuckets
	}
	if o.RangeCacheSize == 0 {
		o.RangeCacheSize = 128
	}
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
}

// Catalog owns the three indexes and keeps them in sync: every Add builds
// one Record and fans it out to all of them under one lock, so no caller
// ever observes a record present in one index but missing from another.
// Records are insert-only; there is no delete, no update, no eviction.
type Catalog struct {
	lock   sync.Mutex
	closed bool

	hash *indexes.HashTable[*Record]
	tree indexes.OrderedIndex[*Record]
	heap *indexes.Priority[*Record]

	rangeCache *lru.Cache[string, []*Record]

	log  utils.Logger
	opts Options
}

func byViews(a, b *Record) int {
	return utils.Ordered(a.Views, b.Views)
}

func NewCatalog(opts Options) *Catalog {
	opts.SetDefaults()
	c := &Catalog{
		log:  opts.Logger,
		opts: opts,
		heap: indexes.NewPriority(byViews),
	}
	c.hash = indexes.NewHashTable[*Record](indexes.HashTableOptions{
		Buckets: opts.BucketCount,
		Hash:    opts.Hash,
		OnInsert: func(bucket int, collision bool) {
			outcome := "fresh"
			if collision {
				outcome = "chained"
			}
			HashInsertCount.WithLabelValues(outcome).Inc()
			c.log.Debug("hash insert", "bucket", bucket, "collision", collision)
		},
	})
	if opts.Balanced {
		c.tree = indexes.NewBalanced[*Record]()
	} else {
		c.tree = indexes.NewTree[*Record]()
	}
	if opts.RangeCacheSize > 0 {
		c.rangeCache, _ = lru.New[string, []*Record](opts.RangeCacheSize)
	}
	return c
}

// Add validates the fields, builds the Record once and inserts it into the
// hash, tree and priority indexes. On a validation error nothing is
// inserted. The created record is returned so callers can hold on to it.
func (c *Catalog) Add(id int64, timestamp, content, author string, views int64) (*Record, error) {
	rec, err := NewRecord(id, timestamp, content, author, views)
	if err != nil {
		InsertCount.WithLabelValues("invalid").Inc()
		c.log.Debug("post rejected", "id", id, "views", views, "err", err)
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		InsertCount.WithLabelValues("closed").Inc()
		return nil, postdex_errors.ErrClosed
	}

	c.hash.Insert(rec.Timestamp, rec)
	c.tree.Insert(rec.Timestamp, rec)
	c.heap.Push(rec)
	if c.rangeCache != nil {
		c.rangeCache.Purge()
	}

	InsertCount.WithLabelValues("ok").Inc()
	c.log.Debug("post added", "id", id, "ts", timestamp, "views", views)
	return rec, nil
}

// FindByTimestamp answers a point lookup. With duplicate timestamps the
// first-inserted record wins; the ok result is false on a miss.
func (c *Catalog) FindByTimestamp(timestamp string) (*Record, bool) {
	defer observe("by_timestamp", time.Now())
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.hash.Search(timestamp)
}

// FindInRange returns the records with timestamps in [start, end], both
// ends inclusive, in the ordered index's traversal order. The result slice
// may be shared with the internal cache: treat it as read-only.
func (c *Catalog) FindInRange(start, end string) []*Record {
	defer observe("in_range", time.Now())
	c.lock.Lock()
	defer c.lock.Unlock()

	key := start + "\x00" + end
	if c.rangeCache != nil {
		if out, ok := c.rangeCache.Get(key); ok {
			RangeCacheCount.WithLabelValues("hit").Inc()
			return out
		}
		RangeCacheCount.WithLabelValues("miss").Inc()
	}
	out := c.tree.Range(start, end)
	if c.rangeCache != nil {
		c.rangeCache.Add(key, out)
	}
	return out
}

// MostViewed returns the record with the greatest view count without
// removing it. Repeated calls agree until the next Add.
func (c *Catalog) MostViewed() (*Record, bool) {
	defer observe("most_viewed", time.Now())
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.heap.PeekMax()
}

// ExtractMostViewed removes and returns the record with the greatest view
// count. The record stays reachable through the other two indexes. Returns
// ErrEmptyIndex when every record has already been extracted.
func (c *Catalog) ExtractMostViewed() (*Record, error) {
	defer observe("extract_most_viewed", time.Now())
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.heap.PopMax()
}

// ListByViews returns all records ordered by descending view count. Ties
// keep a deterministic order for a given insert sequence.
func (c *Catalog) ListByViews() []*Record {
	defer observe("list_by_views", time.Now())
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.heap.Descending()
}

// Len reports the number of records ever added.
func (c *Catalog) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.hash.Len()
}

// Close marks the catalog closed; later Adds fail with ErrClosed. Queries
// keep working on whatever was inserted before.
func (c *Catalog) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
	return nil
}

func observe(op string, start time.Time) {
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
