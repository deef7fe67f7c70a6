// Package responses defines the JSON bodies of the docsite HTTP API.
package responses

import (
	"time"

	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

// SidebarResponse is the body of GET /api/sidebar.
type SidebarResponse struct {
	Path       string        `json:"path"`
	Normalized string        `json:"normalized"`
	Prefix     string        `json:"prefix"`
	CatchAll   bool          `json:"catchAll"`
	Sidebar    *sidebar.Tree `json:"sidebar"`
	Prev       *sidebar.Item `json:"prev,omitempty"`
	Next       *sidebar.Item `json:"next,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	Timestamp      time.Time `json:"timestamp"`
	Uptime         float64   `json:"uptime"`
	ConfigLoadedAt time.Time `json:"config_loaded_at"`
}
