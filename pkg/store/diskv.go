package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/week"
)

// Key is the one storage key the planner is kept under.
const Key = "weekly-planner"

// Persistence loads and saves the planner record.
type Persistence interface {
	// Load returns the stored state as of now. A missing or unreadable
	// record yields an empty state; stale days are regenerated.
	Load(now time.Time) planner.State
	Save(s planner.State) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Record is the serialized form of the planner.
type Record struct {
	Unscheduled []item.Item    `json:"unscheduled"`
	Days        []week.Bucket  `json:"days"`
	LastUpdated item.Timestamp `json:"lastUpdated"`
}

// Option customizes a Persistence.
type Option func(*persistence)

// WithClock replaces time.Now for stamping saved records.
func WithClock(now func() time.Time) Option {
	return func(p *persistence) {
		p.now = now
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	p := &persistence{
		// No cache: other processes write the same record.
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0,
		}),
		basePath: basePath,
		now:      time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

func (p *persistence) Load(now time.Time) planner.State {
	rec, err := p.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("key", Key).Msg("store: discarding unreadable record")
		}
		return planner.New(now)
	}
	return Restore(rec, now)
}

func (p *persistence) read() (Record, error) {
	val, err := p.d.Read(Key)
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return Record{}, fmt.Errorf("store: decode %s: %w", Key, err)
	}
	return rec, nil
}

func (p *persistence) Save(s planner.State) error {
	data, err := json.Marshal(Snapshot(s, p.now()))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, ".tmp"), 0o755); err != nil {
		return fmt.Errorf("store: ensure temp dir: %w", err)
	}
	if err := p.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

// Snapshot converts a state into the record written at now.
func Snapshot(s planner.State, now time.Time) Record {
	s = s.Clone()
	days := make([]week.Bucket, len(s.Days))
	copy(days, s.Days[:])
	return Record{
		Unscheduled: s.Unscheduled,
		Days:        days,
		LastUpdated: item.Timestamp{Time: now},
	}
}

// Restore turns a record back into a state for now. When the record was
// last written in another ISO week, or its days are malformed, the days are
// rebuilt empty and only the pool is kept.
func Restore(rec Record, now time.Time) planner.State {
	s := planner.New(now)
	if rec.Unscheduled != nil {
		s.Unscheduled = item.Copy(rec.Unscheduled)
	}

	// lastUpdated is written in UTC; weeks are counted in now's zone.
	stored := week.Of(rec.LastUpdated.In(now.Location()))
	switch {
	case rec.LastUpdated.IsZero():
		log.Info().Msg("store: record has no timestamp, starting a new week")
		return s
	case stored != week.Of(now):
		log.Info().
			Str("stored", stored.String()).
			Str("current", week.Of(now).String()).
			Msg("store: new week, clearing schedule")
		return s
	case len(rec.Days) != week.Days:
		log.Warn().Int("days", len(rec.Days)).Msg("store: malformed schedule, clearing")
		return s
	}

	for i, b := range rec.Days {
		s.Days[i] = b
		s.Days[i].Items = item.Copy(b.Items)
	}
	if err := s.Validate(); err != nil {
		log.Warn().Err(err).Msg("store: record has duplicates, clearing schedule")
		s = planner.New(now)
		s.Unscheduled = item.Copy(rec.Unscheduled)
		return dedupe(s)
	}
	return s
}

// dedupe drops repeated ids from the pool, keeping the first.
func dedupe(s planner.State) planner.State {
	seen := make(map[string]bool, len(s.Unscheduled))
	out := s.Unscheduled[:0]
	for _, it := range s.Unscheduled {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	s.Unscheduled = out
	return s
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
