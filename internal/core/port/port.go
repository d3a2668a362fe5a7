package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	runner interface {
		Run(context.Context)
	}

	closer interface {
		Close()
	}
)

// A HomePageReader builds the storefront homepage read model.
type HomePageReader interface {
	HomePage(context.Context) domain.HomePage
}

type ContactReader interface {
	Contact(context.Context) domain.ContactChannel
}

type StatsReader interface {
	RegionStats(ctx context.Context, regions ...string) ([]domain.RegionStats, error)
}

type ProductsReader interface {
	ReadProducts(context.Context, domain.Query) ([]domain.ProductRecord, error)
}

type UsersReader interface {
	ReadUsers(context.Context, domain.Query) ([]domain.UserRecord, error)
}

// An OutcomeRecorder observes the outcome of every region read.
type OutcomeRecorder interface {
	RecordOutcome(context.Context, domain.QueryOutcome) error
}

type OutcomeProducer interface {
	OutcomeRecorder
	closer
}

type OutcomeStatsProcessor interface {
	runner
	closer
}

type OutcomeStatsView interface {
	runner
	StatsReader
}
