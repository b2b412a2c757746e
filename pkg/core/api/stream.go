package api

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/stream"
)

// handleWebSocket upgrades the connection and attaches it to the
// broadcaster until the client disconnects or delivery fails.
func (s *APIServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return s.checkWebSocketOrigin(r)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Str("origin", r.Header.Get("Origin")).
			Msg("Failed to upgrade to WebSocket")

		return
	}

	s.logger.Info().
		Str("remote_addr", r.RemoteAddr).
		Msg("WebSocket connection established")

	sub := s.broadcaster.Register()
	stream.ServeConn(s.broadcaster, sub, conn, s.logger)

	s.logger.Debug().
		Str("remote_addr", r.RemoteAddr).
		Msg("WebSocket connection closed")
}

// checkWebSocketOrigin validates the WebSocket origin against the CORS
// configuration.
func (s *APIServer) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	if origin == "" {
		return true
	}

	for _, allowedOrigin := range s.corsConfig.AllowedOrigins {
		if allowedOrigin == origin || allowedOrigin == "*" {
			return true
		}
	}

	if s.logger != nil {
		s.logger.Warn().
			Str("origin", origin).
			Interface("allowed_origins", s.corsConfig.AllowedOrigins).
			Msg("WebSocket CORS: Origin not allowed")
	}

	return false
}
