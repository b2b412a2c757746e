package stream

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second

	maxClientMessageSize = 512
)

// Subscriber is the in-memory handle for one live connection. It exists
// only between Register and Unregister and is never persisted.
type Subscriber struct {
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// Queue exposes the outbound message queue to the connection writer.
func (s *Subscriber) Queue() <-chan []byte {
	return s.send
}

// enqueue attempts a non-blocking hand-off of a raw frame, reporting whether
// it was accepted. Enqueueing after close reports false.
func (s *Subscriber) enqueue(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

// close shuts the outbound queue. Closing twice is a no-op. The lock keeps
// it ordered against concurrent enqueues so they never hit a closed channel.
func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	close(s.send)
}

// ServeConn runs the read and write pumps for a WebSocket connection until
// the client disconnects or delivery fails, then removes the subscriber
// from the broadcaster. It blocks until the connection is finished.
func ServeConn(b *Broadcaster, sub *Subscriber, conn *websocket.Conn, log logger.Logger) {
	done := make(chan struct{})

	go writePump(sub, conn, log, done)
	readPump(b, sub, conn, log)

	<-done
}

// readPump consumes client frames. Client messages carry no commands; they
// are heartbeats, echoed back to the client.
func readPump(b *Broadcaster, sub *Subscriber, conn *websocket.Conn, log logger.Logger) {
	defer func() {
		b.Unregister(sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxClientMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("WebSocket read failed")
			}

			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if !sub.enqueue([]byte("Heartbeat: " + string(message))) {
			log.Warn().Msg("Heartbeat echo dropped, subscriber queue full")
			return
		}
	}
}

// writePump drains the subscriber queue onto the wire and keeps the
// connection alive with periodic pings. A write failure ends the
// connection; the read pump's deferred cleanup removes the subscriber.
func writePump(sub *Subscriber, conn *websocket.Conn, log logger.Logger, done chan<- struct{}) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = conn.Close()
		close(done)
	}()

	for {
		select {
		case message, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Msg("WebSocket write failed")
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Msg("WebSocket ping failed")
				return
			}
		}
	}
}
