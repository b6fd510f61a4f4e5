package companion_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"garden-planner-backend/internal/companion"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	mu    sync.Mutex
	edges []companion.Edge
	err   error
	calls int
}

func (s *stubSource) Edges(ctx context.Context) ([]companion.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.edges, s.err
}

func (s *stubSource) Describe() string { return "stub" }

func (s *stubSource) set(edges []companion.Edge, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges, s.err = edges, err
}

type stubLister struct {
	rows []models.CompanionEdge
	err  error
}

func (s stubLister) GetAll() ([]models.CompanionEdge, error) { return s.rows, s.err }

func TestStore_SnapshotBeforeReload(t *testing.T) {
	store := companion.NewStore(&stubSource{})

	_, err := store.Snapshot()

	assert.True(t, errors.Is(err, apperrors.ErrDatasetNotLoaded))
	assert.False(t, store.Status().Loaded)
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	source := &stubSource{edges: []companion.Edge{{From: "tomato", To: "basil", Type: companion.EdgeHelps}}}
	store := companion.NewStore(source)

	stats, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, companion.LoadStats{Edges: 1, Plants: 2}, stats)

	first, err := store.Snapshot()
	require.NoError(t, err)
	assert.True(t, first.Helps(id("tomato"), id("basil")))

	source.set([]companion.Edge{{From: "carrot", To: "onion", Type: companion.EdgeHelps}}, nil)
	_, err = store.Reload(context.Background())
	require.NoError(t, err)

	second, err := store.Snapshot()
	require.NoError(t, err)
	assert.False(t, second.Knows(id("tomato")))
	// snapshots taken earlier are unaffected
	assert.True(t, first.Knows(id("tomato")))

	status := store.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, "stub", status.Source)
	assert.False(t, status.LoadedAt.IsZero())
}

func TestStore_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	source := &stubSource{edges: []companion.Edge{{From: "tomato", To: "basil", Type: companion.EdgeHelps}}}
	store := companion.NewStore(source)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	source.set(nil, errors.New("boom"))
	_, err = store.Reload(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload stub")
	graph, err := store.Snapshot()
	require.NoError(t, err)
	assert.True(t, graph.Knows(id("basil")))
}

func TestStore_StaticStoreIgnoresReload(t *testing.T) {
	graph, stats := companion.NewGraph([]companion.Edge{{From: "tomato", To: "basil", Type: companion.EdgeHelps}})
	store := companion.NewStaticStore(graph, stats)

	got, err := store.Reload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Same(t, graph, snapshot)
}

func TestStore_ConcurrentReadsDuringReload(t *testing.T) {
	source := &stubSource{edges: []companion.Edge{{From: "tomato", To: "basil", Type: companion.EdgeHelps}}}
	store := companion.NewStore(source)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Reload(context.Background())
		}()
		go func() {
			defer wg.Done()
			graph, err := store.Snapshot()
			assert.NoError(t, err)
			assert.True(t, graph.Knows(id("tomato")))
		}()
	}
	wg.Wait()
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"from":"tomato","to":"basil","type":"helps"}]`), 0o600))
	source := companion.FileSource{Path: path}

	edges, err := source.Edges(context.Background())

	require.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, "file:"+path, source.Describe())
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := companion.FileSource{Path: "irrelevant.json"}.Edges(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDatabaseSource(t *testing.T) {
	source := companion.DatabaseSource{Repo: stubLister{rows: []models.CompanionEdge{
		{FromPlant: "tomato", ToPlant: "potato", Type: "avoid"},
	}}}

	edges, err := source.Edges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []companion.Edge{{From: "tomato", To: "potato", Type: companion.EdgeAvoid}}, edges)
}

func TestDatabaseSource_RepositoryError(t *testing.T) {
	source := companion.DatabaseSource{Repo: stubLister{err: errors.New("connection refused")}}

	_, err := source.Edges(context.Background())

	assert.EqualError(t, err, "load companion edges: connection refused")
}

func TestToModels(t *testing.T) {
	rows := companion.ToModels([]companion.Edge{{From: "tomato", To: "basil", Type: companion.EdgeHelps}})

	require.Len(t, rows, 1)
	assert.Equal(t, "tomato", rows[0].FromPlant)
	assert.Equal(t, "basil", rows[0].ToPlant)
	assert.Equal(t, "helps", rows[0].Type)
}
