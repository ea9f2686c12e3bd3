// Package ipc implements the local request/reply channel between the
// sidebar and external processes: one JSON message per connection over a
// unix domain socket, answered by a single JSON acknowledgment.
package ipc

import (
	"encoding/json"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ClientTimeout bounds a full client round trip.
const ClientTimeout = 2 * time.Second

// Message types understood by the sidebar.
const (
	TypeTodos   = "todos"
	TypeContext = "context"
	TypeTasks   = "tasks"
	TypeFocus   = "focus"
)

// ErrTimeout reports a client call that connected but got no reply in time.
var ErrTimeout = errors.New("timed out waiting for sidebar response")

// Message is the wire format for inbound requests.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Response is the wire format for acknowledgments.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Handler processes one inbound message. A returned error becomes an
// {ok:false} acknowledgment; it is never fatal to the server.
type Handler func(Message) error

// Server accepts one-shot message connections on a unix socket.
type Server struct {
	listener   net.Listener
	socketPath string
	handler    Handler
	log        *logrus.Logger
}

// Listen binds the socket, removing any stale endpoint left by a previous
// instance, and starts serving connections in the background.
func Listen(socketPath string, handler Handler, log *logrus.Logger) (*Server, error) {
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, errors.Wrap(err, "failed to remove stale socket")
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create unix socket listener")
	}

	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
	}

	s := &Server{
		listener:   listener,
		socketPath: socketPath,
		handler:    handler,
		log:        log,
	}
	go s.acceptLoop()
	return s, nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Listener closed on shutdown.
			return
		}
		s.serveConn(conn)
	}
}

// serveConn reads one message, invokes the handler, writes one ack.
// Connections are handled sequentially so the handler never runs
// concurrently with itself.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(ClientTimeout))

	var msg Message
	if err := json.NewDecoder(conn).Decode(&msg); err != nil {
		s.log.WithError(err).Warn("rejected malformed ipc message")
		s.reply(conn, Response{OK: false, Error: err.Error()})
		return
	}

	if err := s.handler(msg); err != nil {
		s.log.WithError(err).WithField("type", msg.Type).Warn("ipc handler failed")
		s.reply(conn, Response{OK: false, Error: err.Error()})
		return
	}
	s.reply(conn, Response{OK: true})
}

func (s *Server) reply(conn net.Conn, resp Response) {
	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.log.WithError(err).Warn("failed to write ipc acknowledgment")
	}
}

// SocketPath returns the bound socket path.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Close stops accepting connections and removes the socket file.
func (s *Server) Close() error {
	err := s.listener.Close()
	if rmErr := os.RemoveAll(s.socketPath); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}

// Send connects to the sidebar socket, delivers one message, and waits for
// the single acknowledgment. Delivery is at-most-once: there is no retry,
// and callers get a fast, distinct error when nothing is listening.
func Send(socketPath string, msg Message) (Response, error) {
	conn, err := net.DialTimeout("unix", socketPath, ClientTimeout)
	if err != nil {
		return Response{}, errors.Wrap(err, "sidebar is not listening")
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(ClientTimeout)); err != nil {
		return Response{}, errors.Wrap(err, "failed to set deadline")
	}

	if err := json.NewEncoder(conn).Encode(msg); err != nil {
		return Response{}, wrapTimeout(err, "failed to send message")
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return Response{}, wrapTimeout(err, "failed to read response")
	}
	return resp, nil
}

// SendData marshals data and sends it as a message of the given type.
func SendData(socketPath, msgType string, data any) (Response, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Response{}, errors.Wrap(err, "failed to encode payload")
	}
	return Send(socketPath, Message{Type: msgType, Data: raw})
}

func wrapTimeout(err error, context string) error {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return ErrTimeout
	}
	return errors.Wrap(err, context)
}
