package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

func TestNewPostgresSource_RequiresDSN(t *testing.T) {
	_, err := NewPostgresSource(PostgresConfig{})
	assert.Error(t, err)
}

func TestEventRecord_RoundTrip(t *testing.T) {
	ev := sampleEvents()[1]
	rec := toRecord(ev)
	assert.Equal(t, time.Date(2021, 9, 7, 0, 0, 0, 0, time.UTC), rec.Day)
	assert.Equal(t, ev, rec.event())
	assert.Equal(t, model.Date{Year: 2021, Month: time.September, Day: 7}, rec.event().Date)
}
