package companion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
)

// Source supplies the raw edges of a companion dataset.
type Source interface {
	Edges(ctx context.Context) ([]Edge, error)
	Describe() string
}

// FileSource reads a JSON, CSV or YAML dataset from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Edges(ctx context.Context) ([]Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadFile(s.Path)
}

func (s FileSource) Describe() string {
	return "file:" + s.Path
}

// EdgeLister is the repository capability DatabaseSource needs.
type EdgeLister interface {
	GetAll() ([]models.CompanionEdge, error)
}

// DatabaseSource reads the dataset from the companion_edges table.
type DatabaseSource struct {
	Repo EdgeLister
}

func (s DatabaseSource) Edges(ctx context.Context) ([]Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load companion edges: %w", err)
	}
	edges := make([]Edge, len(rows))
	for i, row := range rows {
		edges[i] = Edge{From: row.FromPlant, To: row.ToPlant, Type: EdgeType(row.Type)}
	}
	return edges, nil
}

func (s DatabaseSource) Describe() string {
	return "database:companion_edges"
}

// ToModels converts dataset edges into rows for the companion_edges table.
func ToModels(edges []Edge) []models.CompanionEdge {
	rows := make([]models.CompanionEdge, len(edges))
	for i, e := range edges {
		rows[i] = models.CompanionEdge{FromPlant: e.From, ToPlant: e.To, Type: string(e.Type)}
	}
	return rows
}

// StoreStatus describes the loaded snapshot.
type StoreStatus struct {
	Source   string
	Loaded   bool
	LoadedAt time.Time
	Stats    LoadStats
}

// Store holds the current companion graph and swaps it on reload. Readers take
// a snapshot and keep using it for the whole request.
type Store struct {
	source Source

	mu       sync.RWMutex
	graph    *Graph
	stats    LoadStats
	loadedAt time.Time

	reloadMu sync.Mutex
}

// NewStore creates an empty store. Call Reload before taking snapshots.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// NewStaticStore wraps an already built graph. Reload is a no-op without a source.
func NewStaticStore(graph *Graph, stats LoadStats) *Store {
	return &Store{graph: graph, stats: stats, loadedAt: time.Now()}
}

// Snapshot returns the current graph.
func (s *Store) Snapshot() (*Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil, apperrors.ErrDatasetNotLoaded
	}
	return s.graph, nil
}

// Reload rebuilds the graph from the source. On failure the previous graph is kept.
func (s *Store) Reload(ctx context.Context) (LoadStats, error) {
	if s.source == nil {
		return s.Status().Stats, nil
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	edges, err := s.source.Edges(ctx)
	if err != nil {
		return LoadStats{}, fmt.Errorf("reload %s: %w", s.source.Describe(), err)
	}
	graph, stats := NewGraph(edges)

	s.mu.Lock()
	s.graph = graph
	s.stats = stats
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return stats, nil
}

// Status reports what is currently loaded.
func (s *Store) Status() StoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := StoreStatus{
		Loaded:   s.graph != nil,
		LoadedAt: s.loadedAt,
		Stats:    s.stats,
	}
	if s.source != nil {
		status.Source = s.source.Describe()
	}
	return status
}
