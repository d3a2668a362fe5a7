package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

const flushTimeout = 3 * time.Second

var _ port.OutcomeProducer = (*OutcomeProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.cl.Flush(ctx); err != nil {
		log.Warn("failed to flush buffered records", "err", err)
	}

	p.cl.Close()
	log.Info("producer is closed")
}

// produce hands the record over without waiting for the broker.
// Delivery errors are only logged.
func (p producer) produce(ctx context.Context, r *kgo.Record) {
	const op = "produce"
	log := slog.With("op", makeOp(p.opPrefix, op))

	p.cl.Produce(context.WithoutCancel(ctx), r, func(r *kgo.Record, err error) {
		if err != nil {
			log.Error("failed to deliver record", "key", string(r.Key), "err", err)
		}
	})
}

// An OutcomeProducer publishes [domain.QueryOutcome] as
// [schema.QueryOutcomeV1] keyed by region.
type OutcomeProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
	newID    func() string
}

func NewOutcomeProducer(opts ...ProducerOpt) (OutcomeProducer, error) {
	const op = "NewOutcomeProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OutcomeProducer{}, opErr(err, op)
		}
	}

	return newOutcomeProducer(options.cl, options.encoder), nil
}

func newOutcomeProducer(cl ProducerClient, encoder Encoder) OutcomeProducer {
	opPrefix := "OutcomeProducer"
	return OutcomeProducer{
		producer: producer{opPrefix: opPrefix, cl: cl},
		encoder:  encoder,
		opPrefix: opPrefix,
		newID:    uuid.NewString,
	}
}

func (p OutcomeProducer) Close() {
	p.producer.close()
}

func (p OutcomeProducer) RecordOutcome(
	ctx context.Context, v domain.QueryOutcome,
) error {
	const op = "RecordOutcome"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	p.producer.produce(ctx, r)
	return nil
}

func (p OutcomeProducer) createRecord(v domain.QueryOutcome) (*kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	return &kgo.Record{Key: []byte(s.Region), Value: b}, nil
}

func (p OutcomeProducer) toSchema(v domain.QueryOutcome) schema.QueryOutcomeV1 {
	return schema.QueryOutcomeV1{
		EventID:      p.newID(),
		Region:       v.Region,
		Outcome:      string(v.Outcome),
		Count:        v.Count,
		DurationMS:   v.Duration.Milliseconds(),
		ObservedAtMS: v.ObservedAt.UnixMilli(),
	}
}
