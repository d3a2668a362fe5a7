package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.OutcomeStatsProcessor = (*OutcomeStatsProcessor)(nil)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(ctx context.Context) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	go p.waitForReady(ctx)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("preparing...")
	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
	log.Info("running")
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An outcomeEventCodec used for serde [schema.QueryOutcomeV1]
type outcomeEventCodec struct {
	serde Serde
}

func newOutcomeEventCodec(s Serde) outcomeEventCodec {
	return outcomeEventCodec{s}
}

func (c outcomeEventCodec) Encode(v any) ([]byte, error) {
	const op = "outcomeEventCodec.Encode"
	if _, ok := v.(schema.QueryOutcomeV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c outcomeEventCodec) Decode(data []byte) (any, error) {
	const op = "outcomeEventCodec.Decode"
	var s schema.QueryOutcomeV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A regionStatsCodec used for serde [schema.RegionStatsV1] group table values.
// Table values are plain avro without registry framing.
type regionStatsCodec struct {
	encode func(any) ([]byte, error)
	decode func([]byte, any) error
}

func newRegionStatsCodec() regionStatsCodec {
	s := schema.RegionStatsV1Avro()
	return regionStatsCodec{
		encode: schema.AvroEncodeFn(s),
		decode: schema.AvroDecodeFn(s),
	}
}

func (c regionStatsCodec) Encode(v any) ([]byte, error) {
	const op = "regionStatsCodec.Encode"
	if _, ok := v.(schema.RegionStatsV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.encode(v)
}

func (c regionStatsCodec) Decode(data []byte) (any, error) {
	const op = "regionStatsCodec.Decode"
	var s schema.RegionStatsV1
	if err := c.decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// OutcomeStatsProcessorConfig used for setup [OutcomeStatsProcessor].
//
// TLSConfig is optional, other fields are required.
type OutcomeStatsProcessorConfig struct {
	SeedBrokers []string
	Stream      string
	Group       string
	Serde       Serde
	TLSConfig   *tls.Config
}

// An OutcomeStatsProcessor counts query outcomes per region
// in the group table.
type OutcomeStatsProcessor struct {
	processor *processor
}

func NewOutcomeStatsProcessor(
	config OutcomeStatsProcessorConfig,
) (OutcomeStatsProcessor, error) {
	const op = "NewOutcomeStatsProcessor"

	applyTLS(config.TLSConfig)

	gg := goka.DefineGroup(goka.Group(config.Group),
		goka.Input(
			goka.Stream(config.Stream),
			newOutcomeEventCodec(config.Serde),
			processOutcome,
		),
		goka.Persist(newRegionStatsCodec()),
	)

	gp, err := goka.NewProcessor(config.SeedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return OutcomeStatsProcessor{}, opErr(err, op)
	}

	return OutcomeStatsProcessor{
		processor: &processor{opPrefix: "OutcomeStatsProcessor", gp: gp},
	}, nil
}

func (p OutcomeStatsProcessor) Run(ctx context.Context) {
	p.processor.run(ctx)
}

func (p OutcomeStatsProcessor) Close() {
	p.processor.close()
}

func processOutcome(ctx goka.Context, msg any) {
	const op = "OutcomeStatsProcessor.processOutcome"

	v, ok := msg.(schema.QueryOutcomeV1)
	if !ok {
		slog.Error("unexpected message type", "op", op, "key", ctx.Key())
		return
	}

	stats, _ := ctx.Value().(schema.RegionStatsV1)
	ctx.SetValue(applyOutcome(stats, ctx.Key(), v))
}

func applyOutcome(
	stats schema.RegionStatsV1, region string, v schema.QueryOutcomeV1,
) schema.RegionStatsV1 {
	stats.Region = region
	switch domain.Outcome(v.Outcome) {
	case domain.OutcomeLive:
		stats.Live++
	case domain.OutcomeEmpty:
		stats.Empty++
	case domain.OutcomeFailed:
		stats.Failed++
	}
	return stats
}
