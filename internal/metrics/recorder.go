package metrics

import "time"

// ReloadResult labels the outcome of a configuration reload.
type ReloadResult string

const (
	ReloadSuccess   ReloadResult = "success"
	ReloadFailed    ReloadResult = "failed"
	ReloadUnchanged ReloadResult = "unchanged"
)

// Recorder receives observations. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// ObserveResolve records one sidebar resolution that matched prefix.
	ObserveResolve(prefix string, d time.Duration)
	IncConfigReload(result ReloadResult)
	ObserveHTTPRequest(route string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolve(string, time.Duration)          {}
func (NoopRecorder) IncConfigReload(ReloadResult)                  {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration) {}
