// Package logfields holds the canonical slog attribute keys used across docsite.
package logfields

import "log/slog"

const (
	KeyPath       = "path"
	KeyNormalized = "normalized_path"
	KeyPrefix     = "prefix"
	KeyConfigPath = "config_path"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRequestID  = "request_id"
	KeyRemoteAddr = "remote_addr"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyFile       = "file"
	KeyError      = "error"
)

func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Normalized(p string) slog.Attr   { return slog.String(KeyNormalized, p) }
func Prefix(p string) slog.Attr       { return slog.String(KeyPrefix, p) }
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
