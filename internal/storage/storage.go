// Package storage is the process-lifetime entity store of the marketplace.
//
// Every collection lives behind one RWMutex. Inserts draw their id from a
// single sequence shared by all entity types, so ids are unique across the
// store but say nothing about per-type order. Operations that touch two
// collections (an application and its job's applicant count, a ticket and
// its event's sold count, a review and its reviewee's rating) run inside one
// write-locked section: readers never see half of such an update.
//
// Values handed out are copies. Nothing outside the store can reach its
// state except through these methods.
package storage

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDuplicate           = errors.New("duplicate")
	ErrStatusChanged       = errors.New("status changed")
)

type Option func(*Store)

// WithClock replaces time.Now as the source of createdAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// sequence is the id counter shared by all collections. It is only
// advanced while the store's write lock is held.
type sequence struct {
	last int
}

func (q *sequence) next() int {
	q.last++
	return q.last
}

type Store struct {
	mu  sync.RWMutex
	seq sequence
	now func() time.Time

	users         map[int]domain.User
	jobs          map[int]domain.Job
	applications  map[int]domain.JobApplication
	items         map[int]domain.MarketplaceItem
	events        map[int]domain.Event
	tickets       map[int]domain.EventTicket
	reviews       map[int]domain.Review
	notifications map[int]domain.Notification
}

func New(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		users:         make(map[int]domain.User),
		jobs:          make(map[int]domain.Job),
		applications:  make(map[int]domain.JobApplication),
		items:         make(map[int]domain.MarketplaceItem),
		events:        make(map[int]domain.Event),
		tickets:       make(map[int]domain.EventTicket),
		reviews:       make(map[int]domain.Review),
		notifications: make(map[int]domain.Notification),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func collect[T any](m map[int]T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range m {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// newestFirst orders by creation time descending; equal timestamps fall back
// to the later id first.
func newestFirst[T any](rows []T, createdAt func(T) time.Time, id func(T) int) {
	sort.Slice(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i]), createdAt(rows[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return id(rows[i]) > id(rows[j])
	})
}

func byID[T any](rows []T, id func(T) int) {
	sort.Slice(rows, func(i, j int) bool {
		return id(rows[i]) < id(rows[j])
	})
}

// matches applies the browse filter shared by jobs and marketplace items.
func matches(f domain.ListFilter, category, location, title, description string) bool {
	if f.Category != "" && category != f.Category {
		return false
	}
	if f.Location != "" && !containsFold(location, f.Location) {
		return false
	}
	if f.Search != "" && !containsFold(title, f.Search) && !containsFold(description, f.Search) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
