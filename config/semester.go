package config

import (
	"fmt"
	"time"
)

// DateLayout is the format of configured dates.
const DateLayout = "2006-01-02"

// SemesterConfig holds the defaults of the semester view.
type SemesterConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
	// Group is rendered when a request names no entity.
	Group string `json:"group"`
}

// SetDefaults applies the winter semester 2021/22 of group 23-5KB.
func (c *SemesterConfig) SetDefaults() {
	if c.Start == "" {
		c.Start = "2021-09-01"
	}
	if c.End == "" {
		c.End = "2022-03-07"
	}
	if c.Group == "" {
		c.Group = "23-5KB"
	}
}

// Range parses the configured start and end dates in UTC.
func (c SemesterConfig) Range() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, c.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	end, err := time.Parse(DateLayout, c.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

// Validate checks that the range parses and is not reversed.
func (c SemesterConfig) Validate() error {
	start, end, err := c.Range()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end %s before start %s", c.End, c.Start)
	}
	return nil
}
