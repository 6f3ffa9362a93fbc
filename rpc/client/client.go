package client

import (
	"io"
	"net"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/shaik-zeeshan/circle/rpc/common"
	"github.com/shaik-zeeshan/circle/rpc/serializer"
)

var Logger = logger.GetLogger("rpc/client")

// readBufferSize bounds the single response read per exchange
const readBufferSize = 8 * 1024

// --------------------------------------------------------------------------
// Client Factory Method
// --------------------------------------------------------------------------

// NewSocketClient creates a new socket client
// It takes a config and a serializer as parameters
func NewSocketClient(config common.ClientConfig, serializer serializer.IRPCSerializer) *SocketClient {
	return &SocketClient{
		config:     config,
		serializer: serializer,
	}
}

// SocketClient performs one request/response exchange per call over the
// configured Unix domain socket. Every call opens a fresh connection; there
// is no retry, no backoff and no connection reuse.
type SocketClient struct {
	config     common.ClientConfig
	serializer serializer.IRPCSerializer
}

// --------------------------------------------------------------------------
// Exchange Methods
// --------------------------------------------------------------------------

// Send performs exactly one request/response exchange. Connect and read are
// each bounded by the configured timeout independently; exceeding either
// yields a ConnectionTimeout error. The response is returned as-is, with
// Success=false included: interpreting application-level failure is the
// caller's responsibility.
func (c *SocketClient) Send(p *common.Payload) (*common.Response, error) {
	conn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := c.writeRequest(conn, p); err != nil {
		return nil, err
	}

	if timeout := c.timeout(); timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, common.WrapError(common.ErrCIo, "failed to set read deadline", err)
		}
	}

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		switch {
		case err == nil || err == io.EOF:
			// An empty response is not a valid protocol state
			return nil, common.NewError(common.ErrCInvalidRequest, "empty response")
		case isTimeout(err):
			return nil, common.WrapError(common.ErrCConnectionTimeout, "timed out reading response", err)
		default:
			return nil, common.WrapError(common.ErrCIo, "failed to read response", err)
		}
	}

	var resp common.Response
	if err := c.serializer.DeserializeResponse(buf[:n], &resp); err != nil {
		return nil, err
	}

	Logger.Debugf("Received response for request %s (success=%t)", resp.RequestID, resp.Success)
	return &resp, nil
}

// Notify performs a fire-and-forget exchange: connect, write, half-close,
// return. No response is awaited, so neither a missing nor an errored
// response is ever reported.
func (c *SocketClient) Notify(p *common.Payload) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	return c.writeRequest(conn, p)
}

// --------------------------------------------------------------------------
// Typed Exchange Helpers
// --------------------------------------------------------------------------

// Request builds a payload for the given command, performs the exchange and
// decodes the response body into R. The expected response shape R lives only
// in the caller's type system and never reaches the wire. When the server
// reports failure the raw response is returned with a zero R; transport and
// decode failures are returned as errors with a nil response.
func Request[T, R any](c *SocketClient, command string, data T) (R, *common.Response, error) {
	var zero R

	p, err := common.NewPayload(command, data)
	if err != nil {
		return zero, nil, err
	}

	resp, err := c.Send(p)
	if err != nil {
		return zero, nil, err
	}

	if !resp.Success {
		return zero, resp, nil
	}

	result, err := common.DecodeResponseData[R](resp)
	if err != nil {
		return zero, resp, err
	}

	return result, resp, nil
}

// NotifyWith builds a payload for the given command and sends it without
// awaiting a response.
func NotifyWith[T any](c *SocketClient, command string, data T) error {
	p, err := common.NewPayload(command, data)
	if err != nil {
		return err
	}
	return c.Notify(p)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (c *SocketClient) timeout() time.Duration {
	return time.Duration(c.config.TimeoutSecond) * time.Second
}

// connect dials the configured socket path, bounded by the configured
// timeout. Timeouts are classified as ConnectionTimeout to distinguish an
// unreachable or slow server from a definite transport fault.
func (c *SocketClient) connect() (net.Conn, error) {
	dialer := net.Dialer{Timeout: c.timeout()}

	conn, err := dialer.Dial("unix", c.config.SocketPath)
	if err != nil {
		if isTimeout(err) {
			return nil, common.WrapError(common.ErrCConnectionTimeout, "timed out connecting to "+c.config.SocketPath, err)
		}
		return nil, common.WrapError(common.ErrCIo, "failed to connect to "+c.config.SocketPath, err)
	}

	return conn, nil
}

// writeRequest serializes the payload, writes it and half-closes the write
// direction so the peer's single blocking read can return while the
// connection stays open for the response.
func (c *SocketClient) writeRequest(conn net.Conn, p *common.Payload) error {
	data, err := c.serializer.SerializePayload(p)
	if err != nil {
		return err
	}

	if _, err := conn.Write(data); err != nil {
		return common.WrapError(common.ErrCIo, "failed to write request", err)
	}

	if uc, ok := conn.(*net.UnixConn); ok {
		if err := uc.CloseWrite(); err != nil {
			return common.WrapError(common.ErrCIo, "failed to half-close connection", err)
		}
	}

	Logger.Debugf("Sent request %s (command=%s)", p.RequestID, p.Command)
	return nil
}

// isTimeout reports whether err is a timeout as classified by the net package
func isTimeout(err error) bool {
	netErr, ok := err.(net.Error)
	return ok && netErr.Timeout()
}
