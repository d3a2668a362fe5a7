package kafka

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.OutcomeStatsView = (*OutcomeStatsView)(nil)

type tableGetter interface {
	Get(key string) (any, error)
}

// OutcomeStatsViewConfig used for setup [OutcomeStatsView].
//
// TLSConfig is optional, other fields are required.
type OutcomeStatsViewConfig struct {
	SeedBrokers []string
	Group       string
	TLSConfig   *tls.Config
}

// An OutcomeStatsView reads the group table of [OutcomeStatsProcessor].
type OutcomeStatsView struct {
	gv    *goka.View
	table tableGetter
}

func NewOutcomeStatsView(config OutcomeStatsViewConfig) (OutcomeStatsView, error) {
	const op = "NewOutcomeStatsView"

	applyTLS(config.TLSConfig)

	gv, err := goka.NewView(
		config.SeedBrokers,
		goka.GroupTable(goka.Group(config.Group)),
		newRegionStatsCodec(),
	)
	if err != nil {
		return OutcomeStatsView{}, opErr(err, op)
	}

	return OutcomeStatsView{gv: gv, table: gv}, nil
}

func (v OutcomeStatsView) Run(ctx context.Context) {
	const op = "OutcomeStatsView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
		return
	}
	log.Info("stopped")
}

// RegionStats returns counters for each region, zero counters for
// regions without outcomes yet.
func (v OutcomeStatsView) RegionStats(
	ctx context.Context, regions ...string,
) ([]domain.RegionStats, error) {
	const op = "OutcomeStatsView.RegionStats"

	vs := make([]domain.RegionStats, 0, len(regions))
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, opErr(err, op)
		}

		value, err := v.table.Get(region)
		if err != nil {
			return nil, opErr(err, op)
		}

		stats := domain.RegionStats{Region: region}
		if value != nil {
			s, ok := value.(schema.RegionStatsV1)
			if !ok {
				return nil, opErr(
					fmt.Errorf("%w: %T", ErrInvalidValueType, value), op,
				)
			}
			stats.Live = s.Live
			stats.Empty = s.Empty
			stats.Failed = s.Failed
		}
		vs = append(vs, stats)
	}
	return vs, nil
}
