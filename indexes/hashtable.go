package indexes

import (
	"github.com/cespare/xxhash"

	"github.com/feedlab/postdex/utils"
)

const DefaultBuckets = 10

// HashFunc maps a key to an unsigned hash; the table reduces it modulo the
// bucket count. Both provided functions are deterministic and unseeded,
// which is fine for a table whose bucket count is fixed at construction.
type HashFunc func(key string) uint64

// RuneSum sums the code points of the key. Cheap and good enough for short
// timestamp-like keys; the default.
func RuneSum(key string) uint64 {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}
	return sum
}

// XXHash is the stronger alternative for keys with little rune variety.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

type HashTableOptions struct {
	Buckets int
	Hash    HashFunc

	// OnInsert, when set, observes every insert: the bucket the entry went
	// to and whether it chained onto existing entries. Diagnostics only,
	// never part of the functional contract.
	OnInsert func(bucket int, collision bool)
}

func (o *HashTableOptions) SetDefaults() {
	if o.Buckets <= 0 {
		o.Buckets = DefaultBuckets
	}
	if o.Hash == nil {
		o.Hash = RuneSum
	}
}

type chainEntry[V any] struct {
	key  string
	val  V
	next *chainEntry[V]
}

// HashTable is a fixed-size chained hash table. It never resizes and never
// replaces: inserting an existing key appends to the chain, leaving the
// earlier entry first, so Search keeps answering with the first-inserted
// value for that key.
type HashTable[V any] struct {
	buckets []*chainEntry[V]
	size    int
	opts    HashTableOptions
	probes  utils.AvgVal
}

func NewHashTable[V any](opts HashTableOptions) *HashTable[V] {
	opts.SetDefaults()
	return &HashTable[V]{
		buckets: make([]*chainEntry[V], opts.Buckets),
		opts:    opts,
	}
}

func (ht *HashTable[V]) bucket(key string) int {
	return int(ht.opts.Hash(key) % uint64(len(ht.buckets)))
}

// Insert stores (key, val). Duplicate keys are appended, not replaced.
func (ht *HashTable[V]) Insert(key string, val V) {
	b := ht.bucket(key)
	e := &chainEntry[V]{key: key, val: val}
	collision := ht.buckets[b] != nil
	if !collision {
		ht.buckets[b] = e
	} else {
		node := ht.buckets[b]
		for node.next != nil {
			node = node.next
		}
		node.next = e
	}
	ht.size++
	if ht.opts.OnInsert != nil {
		ht.opts.OnInsert(b, collision)
	}
}

// Search returns the first entry inserted under key. A miss is a normal
// result, not an error.
func (ht *HashTable[V]) Search(key string) (val V, ok bool) {
	probes := 0
	for node := ht.buckets[ht.bucket(key)]; node != nil; node = node.next {
		probes++
		if node.key == key {
			ht.probes.Add(float64(probes))
			return node.val, true
		}
	}
	ht.probes.Add(float64(probes))
	return val, false
}

func (ht *HashTable[V]) Len() int {
	return ht.size
}

func (ht *HashTable[V]) Buckets() int {
	return len(ht.buckets)
}

// LongestChain reports the length of the fullest bucket.
func (ht *HashTable[V]) LongestChain() int {
	longest := 0
	for _, node := range ht.buckets {
		n := 0
		for ; node != nil; node = node.next {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// AvgProbes reports the average chain scan length over all Search calls.
func (ht *HashTable[V]) AvgProbes() float64 {
	return ht.probes.Val()
}
