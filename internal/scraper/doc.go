// Package scraper provides HTTP fetching and HTML extraction for football
// schedule pages.
//
// Fetching sends browser-like headers and retries with exponential backoff
// to survive flaky athletics-site infrastructure and basic bot defenses.
// Extraction runs a ranked cascade of structural strategies against the
// fetched document (SIDEARM-style game containers first, then generic
// schedule tables, then free-text lines), because the source layout drifts
// without warning. Each strategy is independent and returns whatever raw
// game records it can find; callers take the first strategy that yields
// results and hand the raw text to the schedule normalizer.
package scraper
