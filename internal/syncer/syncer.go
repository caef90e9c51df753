// Package syncer periodically mirrors CMS list content into the snapshot
// store.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"care-site-backend/config"
	"care-site-backend/internal/cms"
	"care-site-backend/internal/content"
	"care-site-backend/internal/model"
	"care-site-backend/internal/store"
)

// Service orchestrates snapshot syncs.
type Service struct {
	cfg     config.SyncConfig
	content *content.Service
	store   store.Store
	now     func() time.Time
}

// NewService creates a sync service reading through svc and writing to st.
func NewService(cfg config.SyncConfig, svc *content.Service, st store.Store) *Service {
	return &Service{
		cfg:     cfg,
		content: svc,
		store:   st,
		now:     time.Now,
	}
}

// Run syncs once immediately and then on every interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		log.Info().Msg("snapshot sync is disabled; not starting")
		return
	}
	if !s.content.Remote() {
		log.Warn().Msg("CMS credentials are not configured; snapshot sync will not run so the stored snapshot is kept")
		return
	}
	log.Info().Dur("interval", s.cfg.Interval).Msg("starting snapshot sync")

	s.logResult(s.SyncOnce(ctx))

	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("snapshot sync shutting down")
			return
		case <-timer.C:
			s.logResult(s.SyncOnce(ctx))
			timer.Reset(s.cfg.Interval)
		}
	}
}

func (s *Service) logResult(counts map[string]int, err error) {
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	for kind, n := range counts {
		event = event.Int(kind, n)
	}
	event.Msg("snapshot sync cycle finished")
}

// SyncOnce mirrors every content type once and returns the stored count per
// kind. A kind whose pull fails keeps its previous rows; the failure is
// reported in the joined error and the other kinds still sync. Placeholder
// data is never mirrored: without CMS credentials the store is left alone
// and content.ErrUnavailable is returned.
func (s *Service) SyncOnce(ctx context.Context) (map[string]int, error) {
	if !s.content.Remote() {
		return nil, fmt.Errorf("%w: snapshot sync", content.ErrUnavailable)
	}
	now := s.now()
	counts := make(map[string]int)
	var errs []error

	jobs := []struct {
		kind      string
		singleton bool
		pull      func(context.Context) ([]any, error)
	}{
		{content.EndpointNews, false, pager(pageQuery, s.cfg.PageSize, s.content.ListNews)},
		{content.EndpointStaff, false, pager(pageQuery, s.cfg.PageSize, s.content.ListStaff)},
		{content.EndpointFaq, false, pager(pageQuery, s.cfg.PageSize, s.content.ListFaq)},
		{content.EndpointServices, false, pager(pageQuery, s.cfg.PageSize, s.content.ListServices)},
		{content.EndpointRentalCategory, false, pager(pageQuery, s.cfg.PageSize, s.content.ListRentalCategory)},
		{content.EndpointSaleItem, false, pager(pageQuery, s.cfg.PageSize, s.content.ListSaleItem)},
		{content.EndpointRecruit, true, s.pullRecruit},
	}

	for _, job := range jobs {
		items, err := job.pull(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("pull %s: %w", job.kind, err))
			continue
		}

		var singletonID string
		if job.singleton {
			singletonID = job.kind
		}
		records := make([]model.ContentRecord, 0, len(items))
		for _, item := range items {
			r, err := store.NewRecord(job.kind, singletonID, item, now)
			if err != nil {
				log.Warn().Err(err).Str("kind", job.kind).Msg("skipping record")
				continue
			}
			records = append(records, r)
		}

		if err := s.store.ReplaceKind(ctx, job.kind, records); err != nil {
			errs = append(errs, fmt.Errorf("store %s: %w", job.kind, err))
			continue
		}
		counts[job.kind] = len(records)
	}

	return counts, errors.Join(errs...)
}

func (s *Service) pullRecruit(ctx context.Context) ([]any, error) {
	recruit, err := s.content.GetRecruit(ctx)
	if err != nil {
		return nil, err
	}
	return []any{recruit}, nil
}

// pageQuery is the base of every page request. A fixed order keeps offsets
// stable while pages are read.
var pageQuery = &cms.Queries{Orders: "createdAt"}

// pager pages through a list accessor until totalCount records have been
// read or a page comes back empty. Each page request is base with its own
// limit and offset.
func pager[T any](base *cms.Queries, pageSize int, fetch func(context.Context, *cms.Queries) (*model.ListResponse[T], error)) func(context.Context) ([]any, error) {
	return func(ctx context.Context) ([]any, error) {
		var all []any
		offset, total := 0, 1
		for offset < total {
			q := base.Clone()
			q.Limit = cms.Int(pageSize)
			q.Offset = cms.Int(offset)
			resp, err := fetch(ctx, q)
			if err != nil {
				return nil, err
			}
			if len(resp.Contents) == 0 {
				break
			}
			for _, c := range resp.Contents {
				all = append(all, c)
			}
			total = resp.TotalCount
			offset += len(resp.Contents)
		}
		return all, nil
	}
}
