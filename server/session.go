// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cogentcore.org/roomview/base/errors"
	"cogentcore.org/roomview/base/iox/jsonx"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/scene"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message types sent by the client.
const (
	// FrameMessage reports the camera position for one animation frame.
	FrameMessage = "frame"

	// ResizeMessage reports a new viewport size.
	ResizeMessage = "resize"
)

// ClientMessage is a message sent by the browser on the frame WebSocket.
// A message without a type is a frame.
type ClientMessage struct {
	Type string `json:"type,omitempty"`

	// Pos is the camera position of a frame message.
	Pos *math32.Vector3 `json:"pos,omitempty"`

	// Width and Height are the viewport size of a resize message, in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Hello is the first message sent to the client on a new session.
type Hello struct {
	Session string       `json:"session"`
	Scene   *scene.Scene `json:"scene"`
}

// Resized is the reply to a resize message.
type Resized struct {
	Aspect float32 `json:"aspect"`
}

// ErrorReply is sent for messages that could not be applied;
// the session stays open.
type ErrorReply struct {
	Error string `json:"error"`
}

// Session is one WebSocket frame session, advancing its own
// copy of the scene.
type Session struct {
	ID      uuid.UUID
	Scene   *scene.Scene
	Started time.Time

	conn *websocket.Conn
}

// NumSessions returns the number of open sessions.
func (s *Server) NumSessions() int {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	return len(s.sessions)
}

func (s *Server) addSession(ss *Session) bool {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if len(s.sessions) >= s.Config().MaxSessions {
		return false
	}
	s.sessions[ss.ID] = ss
	s.Metrics.sessionsActive.Inc()
	s.Metrics.sessionsTotal.Inc()
	return true
}

func (s *Server) removeSession(ss *Session) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if _, ok := s.sessions[ss.ID]; ok {
		delete(s.sessions, ss.ID)
		s.Metrics.sessionsActive.Dec()
	}
}

// closeSessions sends a going-away close message to all sessions,
// which ends their read loops.
func (s *Server) closeSessions() {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, ss := range s.sessions {
		errors.Log(ss.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)))
		ss.conn.Close()
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if s.NumSessions() >= s.Config().MaxSessions {
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()

	ss := &Session{ID: uuid.New(), Scene: s.Scene().Clone(), Started: time.Now(), conn: conn}
	if !s.addSession(ss) {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many sessions"), time.Now().Add(time.Second))
		return
	}
	defer s.removeSession(ss)
	log := slog.With("session", ss.ID.String())
	log.Info("session started", "remote", r.RemoteAddr)
	defer func() {
		log.Info("session ended", "frames", ss.Scene.Frame, "duration", time.Since(ss.Started).Round(time.Millisecond).String())
	}()

	if err := ss.send(Hello{Session: ss.ID.String(), Scene: ss.Scene}); err != nil {
		log.Warn("session: sending hello", "err", err)
		return
	}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("session: closed by client")
			} else {
				log.Warn("session: read", "err", err)
			}
			return
		}
		reply, err := ss.handle(msg)
		if err != nil {
			s.Metrics.frameErrors.Inc()
			log.Debug("session: bad message", "err", err)
			reply = ErrorReply{Error: err.Error()}
		} else if _, ok := reply.(scene.FrameState); ok {
			s.Metrics.frames.Inc()
		}
		if err := ss.send(reply); err != nil {
			log.Warn("session: write", "err", err)
			return
		}
	}
}

// handle applies one client message to the session scene
// and returns the reply to send.
func (ss *Session) handle(msg []byte) (any, error) {
	var cm ClientMessage
	if err := jsonx.ReadBytes(&cm, msg); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}
	switch cm.Type {
	case "", FrameMessage:
		if cm.Pos == nil {
			return nil, errors.New("frame message without pos")
		}
		return ss.Scene.Tick(*cm.Pos)
	case ResizeMessage:
		if cm.Width <= 0 || cm.Height <= 0 {
			return nil, fmt.Errorf("invalid viewport size %dx%d", cm.Width, cm.Height)
		}
		ss.Scene.Camera.SetAspect(cm.Width, cm.Height)
		return Resized{Aspect: ss.Scene.Camera.Aspect}, nil
	}
	return nil, fmt.Errorf("unknown message type %q", cm.Type)
}

func (ss *Session) send(v any) error {
	b, err := jsonx.WriteBytes(v)
	if err != nil {
		return err
	}
	return ss.conn.WriteMessage(websocket.TextMessage, b)
}
