// Package metrics records resolver, reload and HTTP observations.
//
// Components receive a Recorder and default to NoopRecorder, so callers never
// check for nil:
//
//	type Server struct {
//		recorder metrics.Recorder
//	}
//
//	func New(opts ...Option) *Server {
//		s := &Server{recorder: metrics.NoopRecorder{}}
//		...
//	}
//
// PrometheusRecorder exports the observations under the "docsite" namespace:
//
//	docsite_sidebar_resolutions_total{prefix}
//	docsite_sidebar_resolve_duration_seconds
//	docsite_config_reloads_total{result}
//	docsite_http_requests_total{route,code}
//	docsite_http_request_duration_seconds{route}
package metrics
