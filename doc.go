// Package taxicompare serves the snapshot comparison views over HTTP.
//
// A Service loads both trip snapshots and the zone lookup once, then answers
// the views from the immutable result. Requests made before the load
// completes get ErrNotReady (HTTP 503).
package taxicompare
