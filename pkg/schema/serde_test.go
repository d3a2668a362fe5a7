package schema_test

import (
	"context"
	"testing"

	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeQueryOutcomeV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeQueryOutcomeV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeQueryOutcomeV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeQueryOutcomeV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 7
		subject := "storefront-query-outcomes-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.QueryOutcomeSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeQueryOutcomeV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		v1 := schema.QueryOutcomeV1{
			EventID:      "5f1d7c1e-0000-4000-8000-000000000001",
			Region:       "new_collection",
			Outcome:      "failed",
			Count:        0,
			DurationMS:   12,
			ObservedAtMS: 1760000000000,
		}

		data, err := serde.Encode(v1)
		require.NoError(t, err)
		require.Greater(t, len(data), 5)
		assert.Equal(t, byte(0), data[0], "confluent wire format magic byte")

		var v2 schema.QueryOutcomeV1
		err = serde.Decode(data, &v2)
		require.NoError(t, err)
		assert.Equal(t, v1, v2)

		schemaIdentifier.AssertExpectations(t)
	})
}
