package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozvrh-svg/rozvrh/core/factory"
	"github.com/rozvrh-svg/rozvrh/core/source"
)

func TestSQLiteSource_SaveAndEvents(t *testing.T) {
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Close()) }()
	ctx := context.Background()

	evs := sampleEvents()
	// store out of order; reads come back sorted by day
	require.NoError(t, s.Save(ctx, evs[1:]))
	require.NoError(t, s.Save(ctx, evs[:1]))

	got, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, evs, got)

	evs[1].Topic = "Kinematika"
	require.NoError(t, s.Save(ctx, evs[1:]))
	got, err = s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Kinematika", got[1].Topic)
}

func TestSQLiteSource_Empty(t *testing.T) {
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	got, err := s.Events(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteSource_Registered(t *testing.T) {
	src, err := source.New(factory.ModuleConfig{Type: "sqlite", Conf: map[string]any{"path": filepath.Join(t.TempDir(), "x.db")}})
	require.NoError(t, err)
	defer func() { _ = src.Close() }()
	_, ok := src.(source.Writer)
	assert.True(t, ok)
}
