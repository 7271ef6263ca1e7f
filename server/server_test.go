// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/roomview/base/iox/jsonx"
	"cogentcore.org/roomview/base/websocket"
	"cogentcore.org/roomview/compass"
	"cogentcore.org/roomview/config"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/scene"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *httptest.Server) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	s, err := New(cfg, fstest.MapFS{})
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

// wsClient connects to the frame endpoint, returning the client
// and the channel of received messages.
func wsClient(t *testing.T, ts *httptest.Server) (*websocket.Client, chan []byte) {
	t.Helper()
	c, err := websocket.Connect("ws" + strings.TrimPrefix(ts.URL, "http") + "/ws")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	msgs := make(chan []byte, 16)
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		msgs <- msg
	})
	return c, msgs
}

func recv(t *testing.T, msgs chan []byte, v any) {
	t.Helper()
	select {
	case msg := <-msgs:
		require.NoError(t, jsonx.ReadBytes(v, msg))
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}

func TestScene(t *testing.T) {
	_, ts := newTestServer(t, nil)
	code, body := get(t, ts.URL+"/scene")
	require.Equal(t, http.StatusOK, code)
	var sc scene.Scene
	require.NoError(t, jsonx.ReadBytes(&sc, []byte(body)))
	assert.Equal(t, "room", sc.Name)
	assert.Len(t, sc.Solids, 5)
	assert.Equal(t, "#0000ff", sc.Background.AsHex())
	assert.Len(t, sc.MeshByName(scene.GridName).Lines, 14)

	code, body = get(t, ts.URL+"/scene.yaml")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "name: room")
	assert.Contains(t, body, "shape: LineSet")
}

func TestBearing(t *testing.T) {
	_, ts := newTestServer(t, nil)
	tests := []struct {
		query string
		want  string
	}{
		{"x=0&z=1", "0° N"},
		{"x=1&z=0", "270° W"},
		{"x=0&z=-1", "180° S"},
		{"x=-1&z=0", "90° E"},
		{"x=1&z=1", "315° NW"},
	}
	for _, tt := range tests {
		code, body := get(t, ts.URL+"/bearing?"+tt.query)
		require.Equal(t, http.StatusOK, code, tt.query)
		var rd compass.Reading
		require.NoError(t, jsonx.ReadBytes(&rd, []byte(body)))
		assert.Equal(t, tt.want, rd.String(), tt.query)
	}

	for _, q := range []string{"x=1", "z=1", "x=abc&z=0", "x=NaN&z=0", "x=0&z=Inf", "x=1e60&z=0"} {
		code, _ := get(t, ts.URL+"/bearing?"+q)
		assert.Equal(t, http.StatusBadRequest, code, q)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, ts := newTestServer(t, nil)
	code, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	get(t, ts.URL+"/bearing?x=0&z=1")
	code, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "roomview_http_requests_total")
	assert.Contains(t, body, `handler="bearing"`)
	assert.Contains(t, body, `roomview_config_reloads_total{result="ok"} 1`)

	cfg := config.Default()
	cfg.Server.MetricsPath = ""
	_, ts = newTestServer(t, cfg)
	code, _ = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMetricsPathReload(t *testing.T) {
	s, ts := newTestServer(t, nil)
	cfg := config.Default()
	cfg.Server.MetricsPath = "/stats"
	require.NoError(t, s.Reload(cfg))

	code, body := get(t, ts.URL+"/stats")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "roomview_config_reloads_total")
	code, _ = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = get(t, ts.URL+"/nothing")
	assert.Equal(t, http.StatusNotFound, code)

	cfg.Server.MetricsPath = ""
	require.NoError(t, s.Reload(cfg))
	code, _ = get(t, ts.URL+"/stats")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFrames(t *testing.T) {
	s, ts := newTestServer(t, nil)
	c, msgs := wsClient(t, ts)

	var hello Hello
	recv(t, msgs, &hello)
	_, err := uuid.Parse(hello.Session)
	assert.NoError(t, err)
	require.NotNil(t, hello.Scene)
	assert.Equal(t, "room", hello.Scene.Name)
	assert.Equal(t, 1, s.NumSessions())

	pos := math32.Vec3(0, 2, 7)
	require.NoError(t, c.SendJSON(ClientMessage{Pos: &pos}))
	var fs scene.FrameState
	recv(t, msgs, &fs)
	assert.Equal(t, uint64(1), fs.Frame)
	assert.Equal(t, "0° N", fs.Label)
	assert.Equal(t, pos, fs.Camera)
	require.Len(t, fs.Solids, 2)

	pos = math32.Vec3(-4, 2, 0)
	require.NoError(t, c.SendJSON(ClientMessage{Type: FrameMessage, Pos: &pos}))
	recv(t, msgs, &fs)
	assert.Equal(t, uint64(2), fs.Frame)
	assert.Equal(t, 90, fs.Degree)
	assert.Equal(t, "90° E", fs.Label)
	assert.InDelta(t, math32.TwoPi-0.016, fs.Solids[1].Rotation.X, 1e-5)

	require.NoError(t, c.SendJSON(ClientMessage{Type: ResizeMessage, Width: 1600, Height: 800}))
	var rs Resized
	recv(t, msgs, &rs)
	assert.Equal(t, float32(2), rs.Aspect)

	var er ErrorReply
	require.NoError(t, c.Send(websocket.TextMessage, []byte("{bad")))
	recv(t, msgs, &er)
	assert.Contains(t, er.Error, "invalid message")
	require.NoError(t, c.SendJSON(ClientMessage{Type: "jump"}))
	recv(t, msgs, &er)
	assert.Contains(t, er.Error, "jump")
	require.NoError(t, c.SendJSON(ClientMessage{}))
	recv(t, msgs, &er)
	assert.Contains(t, er.Error, "pos")

	// the template is never advanced by sessions
	assert.Equal(t, uint64(0), s.Scene().Frame)

	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })
	require.NoError(t, c.Close())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("session was not closed")
	}
	assert.Eventually(t, func() bool { return s.NumSessions() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestMaxSessions(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxSessions = 1
	s, ts := newTestServer(t, cfg)
	_, msgs := wsClient(t, ts)
	var hello Hello
	recv(t, msgs, &hello)
	assert.Equal(t, 1, s.NumSessions())

	_, err := websocket.Connect("ws" + strings.TrimPrefix(ts.URL, "http") + "/ws")
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	s, _ := newTestServer(t, nil)
	cfg := config.Default()
	cfg.Scene.Room.Width = 8
	cfg.Server.MaxSessions = 3
	require.NoError(t, s.Reload(cfg))
	assert.Equal(t, float32(8), s.Scene().Room.Width)
	assert.Equal(t, 3, s.Config().MaxSessions)

	bad := config.Default()
	bad.Scene.Grid.Spacing = 0
	assert.Error(t, s.Reload(bad))
	assert.Equal(t, float32(8), s.Scene().Room.Width)

	bad.Scene.Grid.Spacing = 1e-30
	assert.Error(t, s.Reload(bad))
	assert.Equal(t, float32(8), s.Scene().Room.Width)
}

func TestServeShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = 1
	s, err := New(cfg, fstest.MapFS{})
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	c, err := websocket.Connect("ws://" + ln.Addr().String() + "/ws")
	require.NoError(t, err)
	closed := make(chan struct{})
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {})
	c.OnClose(func() { close(closed) })
	require.Eventually(t, func() bool { return s.NumSessions() == 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("session was not closed on shutdown")
	}
}
