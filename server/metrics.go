// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the Prometheus metrics of a [Server], registered
// on their own registry so that several servers can coexist.
type Metrics struct {
	Registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	frames         prometheus.Counter
	frameErrors    prometheus.Counter
	reloads        *prometheus.CounterVec
}

// NewMetrics creates and registers the server metrics.
func NewMetrics() *Metrics {
	const ns = "roomview"
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "HTTP requests by handler, method and status code.",
		}, []string{"handler", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"handler", "method", "code"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "sessions_active",
			Help:      "Currently open frame sessions.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "sessions_total",
			Help:      "Frame sessions opened.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "frames_total",
			Help:      "Frames ticked over all sessions.",
		}),
		frameErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "frame_errors_total",
			Help:      "Frame messages that could not be applied.",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "config_reloads_total",
			Help:      "Scene reloads by result.",
		}, []string{"result"}),
	}
	m.Registry.MustRegister(m.requests, m.duration, m.sessionsActive, m.sessionsTotal,
		m.frames, m.frameErrors, m.reloads)
	return m
}

// Instrument wraps the given handler to count and time its requests.
// The promhttp wrappers keep the http.Hijacker of the writer,
// so WebSocket upgrades still work through them.
func (m *Metrics) Instrument(name string, h http.Handler) http.Handler {
	lbl := prometheus.Labels{"handler": name}
	return promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(lbl),
		promhttp.InstrumentHandlerDuration(m.duration.MustCurryWith(lbl), h))
}

// Handler returns the metrics exposition handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
