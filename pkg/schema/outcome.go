package schema

import "github.com/hamba/avro/v2"

const QueryOutcomeSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "query_outcome",
	"fields" : [
		{"name": "event_id", "type": "string"},
		{"name": "region", "type": "string"},
		{"name": "outcome", "type": "string"},
		{"name": "count", "type": "int"},
		{"name": "duration_ms", "type": "long"},
		{"name": "observed_at_ms", "type": "long"}
	]
}`

const RegionStatsSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "region_stats",
	"fields" : [
		{"name": "region", "type": "string"},
		{"name": "live", "type": "long"},
		{"name": "empty", "type": "long"},
		{"name": "failed", "type": "long"}
	]
}`

type (
	QueryOutcomeV1 struct {
		EventID      string `avro:"event_id"`
		Region       string `avro:"region"`
		Outcome      string `avro:"outcome"`
		Count        int    `avro:"count"`
		DurationMS   int64  `avro:"duration_ms"`
		ObservedAtMS int64  `avro:"observed_at_ms"`
	}

	RegionStatsV1 struct {
		Region string `avro:"region"`
		Live   int64  `avro:"live"`
		Empty  int64  `avro:"empty"`
		Failed int64  `avro:"failed"`
	}
)

func QueryOutcomeV1Avro() avro.Schema {
	return avro.MustParse(QueryOutcomeSchemaTextV1)
}

func RegionStatsV1Avro() avro.Schema {
	return avro.MustParse(RegionStatsSchemaTextV1)
}
