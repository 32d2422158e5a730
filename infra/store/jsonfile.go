package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// JSONFileSource reads events from a file holding either a JSON array or one
// JSON object per line. The file is re-read on every call so edits are
// picked up without a restart.
type JSONFileSource struct {
	path string
	mu   sync.Mutex
}

// NewJSONFileSource returns a source backed by path. The file does not need
// to exist until Events or Save is called.
func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

// Events decodes every event in the file. A missing file yields no events.
func (s *JSONFileSource) Events(ctx context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

func (s *JSONFileSource) read(ctx context.Context) ([]model.Event, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeEvents(ctx, bytes.NewReader(data))
}

// DecodeEvents reads a JSON array of events or a JSONL stream from r.
func DecodeEvents(ctx context.Context, r io.Reader) ([]model.Event, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return []model.Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	if first == '[' {
		var evs []model.Event
		if err := json.NewDecoder(br).Decode(&evs); err != nil {
			return nil, fmt.Errorf("decode event array: %w", err)
		}
		if evs == nil {
			evs = []model.Event{}
		}
		return evs, nil
	}
	evs := []model.Event{}
	dec := json.NewDecoder(br)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var ev model.Event
		err := dec.Decode(&ev)
		if errors.Is(err, io.EOF) {
			return evs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode event %d: %w", n, err)
		}
		evs = append(evs, ev)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// Save merges events into the file by id and rewrites it as a JSON array.
// The new content is written to a temporary file first and renamed into
// place.
func (s *JSONFileSource) Save(ctx context.Context, events []model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.read(ctx)
	if err != nil {
		return err
	}
	merged := mergeByID(existing, events)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(merged); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Close is a no-op; the file is opened per call.
func (s *JSONFileSource) Close() error { return nil }

func mergeByID(existing, updates []model.Event) []model.Event {
	index := make(map[string]int, len(existing))
	out := make([]model.Event, 0, len(existing)+len(updates))
	for _, ev := range existing {
		index[ev.ID] = len(out)
		out = append(out, ev)
	}
	for _, ev := range updates {
		if i, ok := index[ev.ID]; ok {
			out[i] = ev
			continue
		}
		index[ev.ID] = len(out)
		out = append(out, ev)
	}
	return out
}
