package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionStatsV1(t *testing.T) {
	vMarshal := RegionStatsV1{
		Region: "products",
		Live:   10,
		Empty:  2,
		Failed: 1,
	}

	var sSchema avro.Schema
	require.NotPanics(t, func() {
		sSchema = RegionStatsV1Avro()
	})

	data, err := AvroEncodeFn(sSchema)(vMarshal)
	require.NoError(t, err)

	var vUnmarshal RegionStatsV1
	err = AvroDecodeFn(sSchema)(data, &vUnmarshal)
	require.NoError(t, err)

	assert.Equal(t, vMarshal, vUnmarshal)
}

func TestQueryOutcomeV1(t *testing.T) {
	require.NotPanics(t, func() {
		_ = QueryOutcomeV1Avro()
	})
}
