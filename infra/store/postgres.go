package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// eventRecord is the table layout of an event. Name and id lists are stored
// as JSON text through the gorm json serializer.
type eventRecord struct {
	ID              string    `gorm:"column:id;primaryKey"`
	GroupsNames     []string  `gorm:"column:groups_names;serializer:json"`
	TeachersIDs     []string  `gorm:"column:teachers_ids;serializer:json"`
	ClassroomsIDs   []string  `gorm:"column:classrooms_ids;serializer:json"`
	Day             time.Time `gorm:"column:day;type:date;index"`
	StartTime       string    `gorm:"column:start_time"`
	SubjectName     string    `gorm:"column:subject_name"`
	Topic           string    `gorm:"column:topic"`
	TeachersNames   []string  `gorm:"column:teachers_names;serializer:json"`
	ClassroomsNames []string  `gorm:"column:classrooms_names;serializer:json"`
}

func (eventRecord) TableName() string { return "timetable_events" }

func toRecord(ev model.Event) eventRecord {
	return eventRecord{
		ID:              ev.ID,
		GroupsNames:     ev.GroupsNames,
		TeachersIDs:     ev.TeachersIDs,
		ClassroomsIDs:   ev.ClassroomsIDs,
		Day:             ev.Date.Time(),
		StartTime:       ev.StartTime,
		SubjectName:     ev.SubjectName,
		Topic:           ev.Topic,
		TeachersNames:   ev.TeachersNames,
		ClassroomsNames: ev.ClassroomsNames,
	}
}

func (r eventRecord) event() model.Event {
	return model.Event{
		ID:              r.ID,
		GroupsNames:     r.GroupsNames,
		TeachersIDs:     r.TeachersIDs,
		ClassroomsIDs:   r.ClassroomsIDs,
		Date:            model.DateOf(r.Day.UTC()),
		StartTime:       r.StartTime,
		SubjectName:     r.SubjectName,
		Topic:           r.Topic,
		TeachersNames:   r.TeachersNames,
		ClassroomsNames: r.ClassroomsNames,
	}
}

// PostgresConfig selects the database of a PostgresSource.
type PostgresConfig struct {
	DSN string `json:"dsn"`
	// PreferSimpleProtocol is needed behind transaction poolers such as PgBouncer.
	PreferSimpleProtocol bool `json:"prefer_simple_protocol"`
	// AutoMigrate creates or updates the events table on connect.
	AutoMigrate bool `json:"auto_migrate"`
}

// PostgresSource stores events in PostgreSQL through gorm.
type PostgresSource struct {
	db *gorm.DB
}

// NewPostgresSource connects to the configured database.
func NewPostgresSource(cfg PostgresConfig) (*PostgresSource, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres: dsn is required")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN,
		PreferSimpleProtocol: cfg.PreferSimpleProtocol,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	s := &PostgresSource{db: db}
	if cfg.AutoMigrate {
		if err := s.Migrate(context.Background()); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// Migrate creates or updates the events table.
func (s *PostgresSource) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&eventRecord{})
}

// Events returns every stored event ordered by day, start time and id.
func (s *PostgresSource) Events(ctx context.Context) ([]model.Event, error) {
	var recs []eventRecord
	if err := s.db.WithContext(ctx).Order("day, start_time, id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Event, len(recs))
	for i, r := range recs {
		out[i] = r.event()
	}
	return out, nil
}

// Save upserts events by id.
func (s *PostgresSource) Save(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}
	recs := make([]eventRecord, len(events))
	for i, ev := range events {
		recs[i] = toRecord(ev)
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		CreateInBatches(recs, 500).Error
}

// Close releases the connection pool.
func (s *PostgresSource) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
