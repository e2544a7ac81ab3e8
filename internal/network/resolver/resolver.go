// Package resolver maps free-text station input onto exact station ids.
//
// Every known station is scored against the query: names that start with
// the query score 0, the rest score their edit distance to it. The best
// MaxCandidates names are returned. Because every station gets a score, a
// non-empty station set always yields candidates, however poor the match.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bluele/gcache"
)

const (
	MaxCandidates    = 5
	DefaultCacheSize = 256
)

var (
	ErrNoStations       = errors.New("resolver: no stations to match against")
	ErrInvalidSelection = errors.New("resolver: selection out of range")
)

// Candidate is one ranked station.
type Candidate struct {
	Station string
	Score   int
}

// Resolution is the outcome of a query. If NeedsSelection is false the
// match was unambiguous and Selected holds it; otherwise the caller picks
// one of Candidates with Select.
type Resolution struct {
	Query          string
	Candidates     []Candidate
	Selected       string
	NeedsSelection bool
}

// Select returns the candidate at the 1-based index.
func (r Resolution) Select(index int) (string, error) {
	if index < 1 || index > len(r.Candidates) {
		return "", fmt.Errorf("%w: %d not in 1..%d", ErrInvalidSelection, index, len(r.Candidates))
	}
	return r.Candidates[index-1].Station, nil
}

type Option func(*Resolver)

// WithCacheSize bounds the ranking cache. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(r *Resolver) {
		r.cacheSize = size
	}
}

type Resolver struct {
	stations  []string
	lowered   []string
	cacheSize int
	cache     gcache.Cache
}

// New builds a resolver over a copy of stations.
func New(stations []string, opts ...Option) *Resolver {
	sorted := append([]string(nil), stations...)
	sort.Strings(sorted)

	r := &Resolver{
		stations:  sorted,
		lowered:   make([]string, len(sorted)),
		cacheSize: DefaultCacheSize,
	}
	for i, s := range sorted {
		r.lowered[i] = strings.ToLower(s)
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cacheSize > 0 {
		r.cache = gcache.New(r.cacheSize).LRU().Build()
	}
	return r
}

// Stations returns the known station ids in ascending order.
func (r *Resolver) Stations() []string {
	return append([]string(nil), r.stations...)
}

// Resolve ranks the known stations against query.
func (r *Resolver) Resolve(query string) (Resolution, error) {
	if len(r.stations) == 0 {
		return Resolution{Query: query}, ErrNoStations
	}

	candidates := r.rank(strings.ToLower(query))
	res := Resolution{Query: query, Candidates: candidates}
	if len(candidates) == 1 {
		res.Selected = candidates[0].Station
	} else {
		res.NeedsSelection = true
	}
	return res, nil
}

func (r *Resolver) rank(query string) []Candidate {
	if r.cache != nil {
		if v, err := r.cache.Get(query); err == nil {
			return append([]Candidate(nil), v.([]Candidate)...)
		}
	}

	all := make([]Candidate, len(r.stations))
	q := []rune(query)
	for i, name := range r.lowered {
		score := 0
		if !strings.HasPrefix(name, query) {
			score = levenshtein(q, []rune(name))
		}
		all[i] = Candidate{Station: r.stations[i], Score: score}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score < all[j].Score
		}
		return all[i].Station < all[j].Station
	})

	top := all[:min(MaxCandidates, len(all))]
	if r.cache != nil {
		_ = r.cache.Set(query, append([]Candidate(nil), top...))
	}
	return top
}
