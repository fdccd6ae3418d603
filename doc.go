// Package advisor turns a client's financial profile and selected goals
// into narrative assessment reports.
//
// The package derives financial-health metrics (expense ratio, savings
// rate, debt ratio, emergency-fund months) from profile data, scores them
// against fixed thresholds, and selects the natural-language assessments
// and recommendations that the renderer package assembles into documents.
//
// The core is deliberately lenient: malformed or missing input degrades to
// zero values and the corresponding narrative, never to an error. Reports
// are advisory, not transactional.
package advisor
