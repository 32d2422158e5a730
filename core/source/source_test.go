package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozvrh-svg/rozvrh/core/factory"
	"github.com/rozvrh-svg/rozvrh/core/model"
)

func TestMemorySource_SaveReplacesByID(t *testing.T) {
	s := NewMemorySource(model.Event{ID: "1", Topic: "a"}, model.Event{ID: "2"})
	require.NoError(t, s.Save(context.Background(), []model.Event{{ID: "1", Topic: "b"}, {ID: "3"}}))
	evs, err := s.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, evs, 3)
	assert.Equal(t, "b", evs[0].Topic)
	assert.Equal(t, "3", evs[2].ID)
}

func TestMemorySource_ReturnsCopy(t *testing.T) {
	s := NewMemorySource(model.Event{ID: "1"})
	evs, _ := s.Events(context.Background())
	evs[0].ID = "changed"
	again, _ := s.Events(context.Background())
	assert.Equal(t, "1", again[0].ID)
}

func TestNew_Memory(t *testing.T) {
	src, err := New(factory.ModuleConfig{Type: "memory"})
	require.NoError(t, err)
	defer func() { assert.NoError(t, src.Close()) }()
	_, ok := src.(Writer)
	assert.True(t, ok)
	assert.Contains(t, Types(), "memory")
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(factory.ModuleConfig{Type: "carrier-pigeon"})
	assert.Error(t, err)
}
