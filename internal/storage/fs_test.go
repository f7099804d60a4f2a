package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	key := PackageKey("u1", "abc")
	assert.Equal(t, "u1/abc.h5p", key)
	got, err := s.Put(ctx, key, strings.NewReader("zipbytes"))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	rc, err := s.Get(ctx, key)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "zipbytes", string(b))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "../x", "a/../../x", "/"} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrBadKey, key)
	}
}

func TestFSStoreCleanup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFSStore(dir)
	require.NoError(t, err)

	_, err = s.Put(ctx, "u/old.h5p", strings.NewReader("o"))
	require.NoError(t, err)
	_, err = s.Put(ctx, "u/new.h5p", strings.NewReader("n"))
	require.NoError(t, err)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "u", "old.h5p"), past, past))

	n, err := s.Cleanup(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = os.Stat(filepath.Join(dir, "u", "new.h5p"))
	assert.NoError(t, err)
}

func TestPackageKeyAnonymous(t *testing.T) {
	assert.Equal(t, "anonymous/x.h5p", PackageKey("", "x"))
}

func TestFSStoreCleanupKeepsInFlightPuts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFSStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "u"), 0o755))
	tmp := filepath.Join(dir, "u", tmpPrefix+"123")
	require.NoError(t, os.WriteFile(tmp, []byte("partial"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(tmp, past, past))

	n, err := s.Cleanup(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	_, err = os.Stat(tmp)
	assert.NoError(t, err)
}
