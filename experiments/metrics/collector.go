package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done to choose one move.
type SearchMetric struct {
	Depth         int
	Goroutines    int
	CacheCapacity int
	Duration      time.Duration
	DecisionNodes int
	ChanceNodes   int
	Evaluations   int
	CacheLookups  int
	CacheHits     int
	IsTruncated   bool // Time budget ran out before the full depth was searched
}

// HitRate is the fraction of cache lookups that were hits, 0 without lookups.
func (m SearchMetric) HitRate() float64 {
	if m.CacheLookups == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(m.CacheLookups)
}

type MoveMetric struct {
	Step  int
	Move  string
	Score int // Score after the move
	SearchMetric
}

type GameMetric struct {
	Seed        uint64
	FinalScore  int
	Steps       int
	MaxTile     int
	Reached2048 bool
	MoveCounts  map[string]int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

type Collector interface {
	Start(depth, goroutines, cacheCapacity int)
	AddDecisionNode()
	AddChanceNode()
	AddEvaluation()
	AddCacheLookup(hit bool)
	SetTruncated()
	Complete() SearchMetric
}

type collector struct {
	depth         int
	goroutines    int
	cacheCapacity int
	startTime     time.Time
	decisionNodes atomic.Int64
	chanceNodes   atomic.Int64
	evaluations   atomic.Int64
	cacheLookups  atomic.Int64
	cacheHits     atomic.Int64
	isTruncated   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth, goroutines, cacheCapacity int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.cacheCapacity = cacheCapacity
	m.decisionNodes.Store(0)
	m.chanceNodes.Store(0)
	m.evaluations.Store(0)
	m.cacheLookups.Store(0)
	m.cacheHits.Store(0)
	m.isTruncated.Store(false)
}

func (m *collector) AddDecisionNode() {
	m.decisionNodes.Add(1)
}

func (m *collector) AddChanceNode() {
	m.chanceNodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCacheLookup(hit bool) {
	m.cacheLookups.Add(1)
	if hit {
		m.cacheHits.Add(1)
	}
}

func (m *collector) SetTruncated() {
	m.isTruncated.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:         m.depth,
		Goroutines:    m.goroutines,
		CacheCapacity: m.cacheCapacity,
		Duration:      time.Since(m.startTime),
		DecisionNodes: int(m.decisionNodes.Load()),
		ChanceNodes:   int(m.chanceNodes.Load()),
		Evaluations:   int(m.evaluations.Load()),
		CacheLookups:  int(m.cacheLookups.Load()),
		CacheHits:     int(m.cacheHits.Load()),
		IsTruncated:   m.isTruncated.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines, cacheCapacity int) {}
func (m *dummyCollector) AddDecisionNode()                         {}
func (m *dummyCollector) AddChanceNode()                           {}
func (m *dummyCollector) AddEvaluation()                           {}
func (m *dummyCollector) AddCacheLookup(hit bool)                  {}
func (m *dummyCollector) SetTruncated()                            {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
