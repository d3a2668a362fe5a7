package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakeClient struct {
	mu      sync.Mutex
	records []*kgo.Record
	err     error
	flushed bool
	closed  bool
}

func (c *fakeClient) Produce(
	ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error),
) {
	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()
	promise(r, c.err)
}

func (c *fakeClient) Flush(ctx context.Context) error {
	c.flushed = true
	return nil
}

func (c *fakeClient) Close() {
	c.closed = true
}

type plainSerde struct{}

func (plainSerde) Encode(v any) ([]byte, error) {
	return schema.AvroEncodeFn(schema.QueryOutcomeV1Avro())(v)
}

func (plainSerde) Decode(data []byte, v any) error {
	return schema.AvroDecodeFn(schema.QueryOutcomeV1Avro())(data, v)
}

type failingEncoder struct{}

func (failingEncoder) Encode(any) ([]byte, error) {
	return nil, errors.New("encode failed")
}

func TestOutcomeProducer(t *testing.T) {
	observed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	outcome := domain.QueryOutcome{
		Region:     domain.RegionNewCollection,
		Outcome:    domain.OutcomeEmpty,
		Count:      0,
		Duration:   25 * time.Millisecond,
		ObservedAt: observed,
	}

	t.Run("Regular", func(t *testing.T) {
		cl := new(fakeClient)
		p := newOutcomeProducer(cl, plainSerde{})
		p.newID = func() string { return "event-1" }

		err := p.RecordOutcome(t.Context(), outcome)
		require.NoError(t, err)

		require.Len(t, cl.records, 1)
		r := cl.records[0]
		assert.Equal(t, []byte(domain.RegionNewCollection), r.Key)

		var s schema.QueryOutcomeV1
		require.NoError(t, plainSerde{}.Decode(r.Value, &s))
		assert.Equal(t, schema.QueryOutcomeV1{
			EventID:      "event-1",
			Region:       domain.RegionNewCollection,
			Outcome:      "empty",
			Count:        0,
			DurationMS:   25,
			ObservedAtMS: observed.UnixMilli(),
		}, s)
	})

	t.Run("DeliveryErrorIsNotReturned", func(t *testing.T) {
		cl := &fakeClient{err: errors.New("broker down")}
		p := newOutcomeProducer(cl, plainSerde{})

		assert.NoError(t, p.RecordOutcome(t.Context(), outcome))
	})

	t.Run("EncodeError", func(t *testing.T) {
		cl := new(fakeClient)
		p := newOutcomeProducer(cl, failingEncoder{})

		assert.Error(t, p.RecordOutcome(t.Context(), outcome))
		assert.Empty(t, cl.records)
	})

	t.Run("Close", func(t *testing.T) {
		cl := new(fakeClient)
		p := newOutcomeProducer(cl, plainSerde{})
		p.Close()

		assert.True(t, cl.flushed)
		assert.True(t, cl.closed)
	})
}

func TestNewOutcomeProducerTooFewOpts(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewOutcomeProducer(ProducerEncoderOpt(plainSerde{}))
	})
}

func TestApplyOutcome(t *testing.T) {
	var stats schema.RegionStatsV1
	for _, o := range []domain.Outcome{
		domain.OutcomeLive, domain.OutcomeLive, domain.OutcomeEmpty,
		domain.OutcomeFailed, "unknown",
	} {
		stats = applyOutcome(stats, domain.RegionProducts, schema.QueryOutcomeV1{
			Outcome: string(o),
		})
	}

	assert.Equal(t, schema.RegionStatsV1{
		Region: domain.RegionProducts,
		Live:   2,
		Empty:  1,
		Failed: 1,
	}, stats)
}

func TestCodecs(t *testing.T) {
	t.Run("RegionStats", func(t *testing.T) {
		c := newRegionStatsCodec()
		v := schema.RegionStatsV1{Region: "contact", Live: 3}

		data, err := c.Encode(v)
		require.NoError(t, err)
		got, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		_, err = c.Encode("not stats")
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})

	t.Run("OutcomeEvent", func(t *testing.T) {
		c := newOutcomeEventCodec(plainSerde{})
		v := schema.QueryOutcomeV1{EventID: "e", Region: "products", Outcome: "live", Count: 6}

		data, err := c.Encode(v)
		require.NoError(t, err)
		got, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		_, err = c.Encode(1)
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})
}

type fakeTable map[string]any

func (t fakeTable) Get(key string) (any, error) {
	if v, ok := t[key]; ok {
		if err, ok := v.(error); ok {
			return nil, err
		}
		return v, nil
	}
	return nil, nil
}

func TestOutcomeStatsViewRegionStats(t *testing.T) {
	v := OutcomeStatsView{table: fakeTable{
		domain.RegionProducts: schema.RegionStatsV1{Region: domain.RegionProducts, Live: 4, Failed: 1},
	}}

	vs, err := v.RegionStats(t.Context(), domain.RegionProducts, domain.RegionContact)
	require.NoError(t, err)
	assert.Equal(t, []domain.RegionStats{
		{Region: domain.RegionProducts, Live: 4, Failed: 1},
		{Region: domain.RegionContact},
	}, vs)

	v = OutcomeStatsView{table: fakeTable{"x": errors.New("not running")}}
	_, err = v.RegionStats(t.Context(), "x")
	assert.Error(t, err)

	v = OutcomeStatsView{table: fakeTable{"y": 42}}
	_, err = v.RegionStats(t.Context(), "y")
	assert.ErrorIs(t, err, ErrInvalidValueType)
}
