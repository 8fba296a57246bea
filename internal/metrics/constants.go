package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "craftgraph_http_requests_total"
	MetricNameHTTPRequestDuration  = "craftgraph_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "craftgraph_http_requests_in_flight"
	MetricNameAnalysesPerformed    = "craftgraph_analyses_performed_total"
	MetricNameRecipesImported      = "craftgraph_recipes_imported_total"
	MetricNameImportFailures       = "craftgraph_import_failures_total"
	MetricNameAnalysisCacheHits    = "craftgraph_analysis_cache_hits_total"
	MetricNameAnalysisCacheMisses  = "craftgraph_analysis_cache_misses_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being processed"
	HelpTextAnalysesPerformed    = "Total number of recipe-graph analyses performed"
	HelpTextRecipesImported      = "Total number of recipes imported per source"
	HelpTextImportFailures       = "Total number of records dropped during import per source"
	HelpTextAnalysisCacheHits    = "Total number of analysis cache hits"
	HelpTextAnalysisCacheMisses  = "Total number of analysis cache misses"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelSource    = "source"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
