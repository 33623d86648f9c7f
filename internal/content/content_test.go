package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "NMBK", c.Brand)
	require.Len(t, c.Solutions.Items, 3)
	assert.Equal(t, "Web Development", c.Solutions.Items[0].Title)
	require.Len(t, c.Enrichment.Items, 3)
	assert.Equal(t, "Bhajan", c.Enrichment.Items[2].Title)
	require.Len(t, c.Contact.Info, 3)
	assert.Equal(t, "hello@nmbk.tech", c.Contact.Info[1].Value)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("brand: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("brand: ''\nsolutions:\n  items:\n    - id: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand is empty")
	assert.Contains(t, err.Error(), "solutions[0]: title is empty")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore(t *testing.T) {
	s := NewStore(Default())
	v := s.Version()
	next := &Catalog{Brand: "Other"}
	s.Set(next)
	assert.Same(t, next, s.Get())
	assert.Equal(t, v+1, s.Version())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o644))

	store := NewStore(Default())
	w, err := NewWatcher(path, store, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("brand: Renamed\n"), 0o644))
	assert.Eventually(t, func() bool {
		return store.Get().Brand == "Renamed"
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("brand: ''\n"), 0o644))
	assert.Eventually(t, func() bool {
		_, failures := w.Stats()
		return failures > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Renamed", store.Get().Brand)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "site.yaml"), NewStore(Default()), time.Millisecond, nil)
	require.NoError(t, err)
	w.Stop()
}

func TestWatcher_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(filepath.Join(t.TempDir(), "site.yaml"), NewStore(Default()), time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	cancel()
	w.Stop()
}
