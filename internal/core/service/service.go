package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/sourcegraph/conc"
)

var _ port.HomePageReader = (*Service)(nil)
var _ port.ContactReader = (*Service)(nil)

type Service struct {
	productsReader port.ProductsReader
	usersReader    port.UsersReader
	recorders      []port.OutcomeRecorder
	contactConfig  ContactConfig
	now            func() time.Time
}

func New(
	productsReader port.ProductsReader,
	usersReader port.UsersReader,
	contactConfig ContactConfig,
	recorders ...port.OutcomeRecorder,
) Service {
	contactConfig.normalize()
	return Service{
		productsReader: productsReader,
		usersReader:    usersReader,
		recorders:      recorders,
		contactConfig:  contactConfig,
		now:            time.Now,
	}
}

// HomePage reads the featured products, the available products and the
// admin contact concurrently. Each read fails on its own: a failed read
// is logged and rendered as an empty one.
func (s Service) HomePage(ctx context.Context) domain.HomePage {
	const op = "Service.HomePage"
	log := slog.With("op", op)

	var (
		featured []domain.Product
		general  []domain.Product
		admins   []domain.User
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		featured = s.readProducts(ctx, domain.RegionNewCollection, FeaturedQuery())
	})
	wg.Go(func() {
		general = s.readProducts(ctx, domain.RegionProducts, GeneralQuery())
	})
	wg.Go(func() {
		admins = s.readAdmins(ctx)
	})
	if r := wg.WaitAndRecover(); r != nil {
		log.Error("read panicked", "err", r.AsError())
	}

	return domain.HomePage{
		NewCollection: SelectDisplaySet(featured, NewCollectionFallback()),
		Products:      SelectDisplaySet(general, ProductsFallback()),
		Contact:       DeriveContact(admins, s.contactConfig),
		Showcase:      Showcase(),
	}
}

// Contact reads the admin users and derives the contact channel.
func (s Service) Contact(ctx context.Context) domain.ContactChannel {
	return DeriveContact(s.readAdmins(ctx), s.contactConfig)
}

func (s Service) readProducts(
	ctx context.Context, region string, q domain.Query,
) []domain.Product {
	const op = "Service.readProducts"
	log := slog.With("op", op, "region", region)

	start := s.now()
	recs, err := s.productsReader.ReadProducts(ctx, q)
	if err != nil {
		log.Error("failed to read products", "err", err)
		s.record(ctx, region, 0, start, err)
		return nil
	}

	if q.Limit > 0 && len(recs) > q.Limit {
		log.Warn("store ignored the limit, clipping",
			"limit", q.Limit, "nRecords", len(recs),
		)
		recs = recs[:q.Limit]
	}

	ps := NormalizeAll(recs, s.now())
	s.record(ctx, region, len(ps), start, nil)
	log.Debug("products read", "nProducts", len(ps))
	return ps
}

func (s Service) readAdmins(ctx context.Context) []domain.User {
	const op = "Service.readAdmins"
	log := slog.With("op", op)

	start := s.now()
	recs, err := s.usersReader.ReadUsers(ctx, AdminQuery())
	if err != nil {
		log.Error("failed to read admin contact", "err", err)
		s.record(ctx, domain.RegionContact, 0, start, err)
		return nil
	}

	if len(recs) > 1 {
		log.Warn("more than one admin found, using the first", "nAdmins", len(recs))
	}

	us := NormalizeUsers(recs, s.now())
	s.record(ctx, domain.RegionContact, len(us), start, nil)
	return us
}

func (s Service) record(
	ctx context.Context, region string, count int, start time.Time, readErr error,
) {
	const op = "Service.record"

	outcome := domain.OutcomeLive
	switch {
	case readErr != nil:
		outcome = domain.OutcomeFailed
	case count == 0:
		outcome = domain.OutcomeEmpty
	}

	v := domain.QueryOutcome{
		Region:     region,
		Outcome:    outcome,
		Count:      count,
		Duration:   s.now().Sub(start),
		ObservedAt: start,
	}

	for _, r := range s.recorders {
		if err := r.RecordOutcome(ctx, v); err != nil {
			slog.Warn("failed to record outcome",
				"op", op, "region", region, "err", err,
			)
		}
	}
}
