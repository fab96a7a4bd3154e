package postdex

import (
	"fmt"

	"github.com/feedlab/postdex/postdex_errors"
)

// Record is one stored post. It is immutable once constructed: the catalog
// hands the same *Record to all three indexes and back to callers, and
// nobody — index or caller — may mutate it.
//
// Timestamp is compared lexicographically everywhere. Callers must supply a
// format whose lexicographic order matches chronological order, e.g.
// "2024-04-14 11:00:00". No calendar semantics are implemented.
type Record struct {
	Id        int64
	Timestamp string
	Content   string
	Author    string
	Views     int64
}

// NewRecord validates and builds a Record. The only enforced invariant is a
// non-negative view count; ids and timestamps are taken on faith from the
// caller, uniqueness included.
func NewRecord(id int64, timestamp, content, author string, views int64) (*Record, error) {
	if views < 0 {
		return nil, postdex_errors.ErrInvalidRecord
	}
	return &Record{
		Id:        id,
		Timestamp: timestamp,
		Content:   content,
		Author:    author,
		Views:     views,
	}, nil
}

func (r *Record) String() string {
	return fmt.Sprintf("post %d at %q by %s, %d views", r.Id, r.Timestamp, r.Author, r.Views)
}
