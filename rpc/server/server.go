package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/shaik-zeeshan/circle/rpc/common"
	"github.com/shaik-zeeshan/circle/rpc/serializer"
)

var Logger = logger.GetLogger("rpc/server")

const (
	// readBufferSize bounds the single request read per connection
	readBufferSize = 8 * 1024

	// probeTimeout bounds the liveness probe against a pre-existing socket file
	probeTimeout = 250 * time.Millisecond
)

// --------------------------------------------------------------------------
// Server Factory Method
// --------------------------------------------------------------------------

// NewSocketServer creates a new socket server
// It takes a config and a serializer as parameters
//
// Usage:
//
//	s := server.NewSocketServer(
//		config,
//		serializer.NewJSONSerializer(),
//	)
//	s.RegisterHandler("start", handler)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewSocketServer(config common.ServerConfig, serializer serializer.IRPCSerializer) *SocketServer {
	return &SocketServer{
		config:     config,
		serializer: serializer,
		registry:   newRegistry(),
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return make([]byte, readBufferSize)
			},
		},
	}
}

// SocketServer accepts connections on a Unix domain socket and dispatches
// each to a registered handler. Connections are handled independently: one
// goroutine per accepted connection, no ordering across connections.
type SocketServer struct {
	config     common.ServerConfig
	serializer serializer.IRPCSerializer
	registry   *registry
	bufferPool *sync.Pool

	listenerMu sync.Mutex
	listener   net.Listener
}

// --------------------------------------------------------------------------
// Registration
// --------------------------------------------------------------------------

// RegisterHandler registers a handler for a command name. Registration is
// safe at any time, but handlers registered while serving are not guaranteed
// to be observed by connections already in flight. Register before Serve
// unless eventual visibility is acceptable.
func (s *SocketServer) RegisterHandler(command string, handler HandlerFunc) {
	s.registry.register(command, handler)
}

// --------------------------------------------------------------------------
// Serving
// --------------------------------------------------------------------------

// Serve binds the socket and accepts connections until Close is called.
// Accept errors are logged and never fatal to the loop.
func (s *SocketServer) Serve() error {
	listener, err := s.listen()
	if err != nil {
		return err
	}

	s.listenerMu.Lock()
	s.listener = listener
	s.listenerMu.Unlock()

	Logger.Infof("Socket server listening on %s", s.config.SocketPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				Logger.Infof("Listener closed, stopping accept loop")
				return nil
			}
			Logger.Errorf("Accept error: %v", err)
			continue
		}

		// Handle the connection in a goroutine
		go s.handleConnection(conn)
	}
}

// Close stops the accept loop and removes the socket file. Connections
// already being handled run to completion.
func (s *SocketServer) Close() error {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	if s.listener == nil {
		return nil
	}

	err := s.listener.Close()
	s.listener = nil
	_ = os.Remove(s.config.SocketPath)
	return err
}

// listen claims the socket path and creates the listener. A pre-existing
// file at the path is probed first: if something still answers on it the
// path belongs to a live server and binding fails with AddressInUse; only a
// dead socket file is removed and rebound.
func (s *SocketServer) listen() (net.Listener, error) {
	socketPath := s.config.SocketPath

	if _, err := os.Stat(socketPath); err == nil {
		if conn, err := net.DialTimeout("unix", socketPath, probeTimeout); err == nil {
			conn.Close()
			return nil, common.NewError(common.ErrCAddressInUse, fmt.Sprintf("socket %s is owned by a live server", socketPath))
		}

		Logger.Warningf("Removing stale socket file %s", socketPath)
		if err := os.Remove(socketPath); err != nil {
			return nil, common.WrapError(common.ErrCIo, "failed to remove stale socket", err)
		}
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, common.WrapError(common.ErrCIo, "failed to create Unix socket", err)
	}

	return listener, nil
}

// --------------------------------------------------------------------------
// Per-Connection Handling
// --------------------------------------------------------------------------

// handleConnection performs the single read/dispatch/write round trip for
// one accepted connection. Errors are confined to this connection and, where
// a response channel still exists, converted into a failed Response.
func (s *SocketServer) handleConnection(conn net.Conn) {
	defer conn.Close()

	// Server-side deadline so a slow or silent peer cannot occupy this
	// goroutine indefinitely. Covers both the read and the write.
	if timeout := time.Duration(s.config.TimeoutSecond) * time.Second; timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			Logger.Errorf("Failed to set connection deadline: %v", err)
			return
		}
	}

	// Get a buffer from the pool
	buf := s.bufferPool.Get().([]byte)
	defer s.bufferPool.Put(buf)

	n, err := conn.Read(buf)
	if n == 0 {
		if err == nil || err == io.EOF {
			Logger.Warningf("Empty connection received")
		} else {
			Logger.Errorf("Failed to read request: %v", err)
		}
		return
	}

	// Decode the request. Invalid bytes drop the connection with no
	// response since no request id is known to answer to.
	var payload common.Payload
	if err := s.serializer.DeserializePayload(buf[:n], &payload); err != nil {
		metrics.GetOrCreateCounter(`circle_invalid_requests_total`).Inc()
		Logger.Warningf("Invalid request: %v", err)
		return
	}

	resp := s.dispatch(&payload)

	out, err := s.serializer.SerializeResponse(resp)
	if err != nil {
		Logger.Errorf("Failed to serialize response for request %s: %v", payload.RequestID, err)
		out, err = s.serializer.SerializeResponse(common.NewErrorResponse(payload.RequestID, fmt.Sprintf("failed to serialize response: %v", err)))
		if err != nil {
			return
		}
	}

	if _, err := conn.Write(out); err != nil {
		Logger.Errorf("Failed to write response for request %s: %v", payload.RequestID, err)
		return
	}

	Logger.Debugf("Sent response for request %s", payload.RequestID)
}

// dispatch routes a decoded request to its handler and always yields a
// response envelope carrying the original request id.
func (s *SocketServer) dispatch(payload *common.Payload) *common.Response {
	metrics.GetOrCreateCounter(fmt.Sprintf(`circle_requests_total{command=%q}`, payload.Command)).Inc()

	handler, ok := s.registry.lookup(payload.Command)
	if !ok {
		metrics.GetOrCreateCounter(`circle_handler_not_found_total`).Inc()
		Logger.Warningf("No handler for command %q (request %s)", payload.Command, payload.RequestID)
		return common.NewErrorResponse(payload.RequestID, fmt.Sprintf("no handler for command: %s", payload.Command))
	}

	// Handlers run synchronously inside this connection's goroutine. A slow
	// handler blocks only its own connection.
	start := time.Now()
	resp, err := handler(payload)
	metrics.GetOrCreateSummary(fmt.Sprintf(`circle_request_duration_seconds{command=%q}`, payload.Command)).UpdateDuration(start)

	if err != nil {
		metrics.GetOrCreateCounter(fmt.Sprintf(`circle_handler_errors_total{command=%q}`, payload.Command)).Inc()
		Logger.Warningf("Handler for command %q failed: %v", payload.Command, err)
		return common.NewErrorResponse(payload.RequestID, err.Error())
	}

	return resp
}
