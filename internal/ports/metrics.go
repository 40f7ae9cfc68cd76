package ports

import "time"

// Lookup outcomes reported to MetricsRecorder.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

// MetricsRecorder records catalog activity. Implementations must be safe
// for concurrent use.
type MetricsRecorder interface {
	// RecordSearch records one search and how many logos it returned.
	// blank is true when the query was empty after trimming.
	RecordSearch(blank bool, results int)

	// RecordLookup records a detail lookup with LookupFound or LookupNotFound.
	RecordLookup(result string)

	// RecordSnippet records one generated snippet.
	RecordSnippet(variant string)

	// RecordCatalogLoad records a catalog (re)load from a source.
	RecordCatalogLoad(source string, logos int, duration time.Duration, err error)

	// RecordCacheLookup records an asset cache hit or miss.
	RecordCacheLookup(hit bool)
}
