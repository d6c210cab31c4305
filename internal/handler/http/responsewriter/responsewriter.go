// Package responsewriter captures what a handler wrote so the logging,
// metrics, and tracing layers can report on the finished response.
package responsewriter

import "net/http"

// Recorder wraps http.ResponseWriter and remembers the status code and
// body size of the response as the handler produces them.
type Recorder struct {
	http.ResponseWriter

	status      int
	bytes       int64
	wroteHeader bool
}

// Record wraps w. The status starts at 200 because handlers that only
// call Write never report one explicitly.
func Record(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and drops later ones,
// matching net/http's superfluous-WriteHeader handling.
func (rec *Recorder) WriteHeader(status int) {
	if rec.wroteHeader {
		return
	}
	rec.status = status
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(status)
}

// Write forwards body bytes, accounting for them as it goes.
func (rec *Recorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Status returns the response status code.
func (rec *Recorder) Status() int { return rec.status }

// Bytes returns the number of body bytes written so far.
func (rec *Recorder) Bytes() int64 { return rec.bytes }

// ServerError reports whether the response carried a 5xx status.
func (rec *Recorder) ServerError() bool { return rec.status >= http.StatusInternalServerError }

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *Recorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }
