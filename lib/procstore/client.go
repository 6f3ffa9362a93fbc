package procstore

import (
	"fmt"

	"github.com/shaik-zeeshan/circle/rpc/client"
	"github.com/shaik-zeeshan/circle/rpc/common"
	"github.com/shaik-zeeshan/circle/rpc/serializer"
)

// NewClient creates a typed process-store client talking to a daemon on the
// configured socket.
func NewClient(config common.ClientConfig) *Client {
	return &Client{
		rpc: client.NewSocketClient(config, serializer.NewJSONSerializer()),
	}
}

// Client wraps the raw socket client with the process-store operations.
// Unlike the dispatcher underneath, it interprets application-level failure:
// a response with success=false is surfaced as an error carrying the
// server's message.
type Client struct {
	rpc *client.SocketClient
}

// --------------------------------------------------------------------------
// Store Operations
// --------------------------------------------------------------------------

func (c *Client) Start(name, command string) (string, error) {
	result, resp, err := client.Request[StartRequest, StartResponse](c.rpc, CommandStart, StartRequest{Name: name, Command: command})
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("%s", resp.Error)
	}
	return result.Message, nil
}

func (c *Client) Stop(name string) (string, error) {
	result, resp, err := client.Request[StopRequest, StopResponse](c.rpc, CommandStop, StopRequest{Name: name})
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("%s", resp.Error)
	}
	return result.Message, nil
}

func (c *Client) List() (map[string]string, error) {
	result, resp, err := client.Request[ListRequest, ListResponse](c.rpc, CommandList, ListRequest{})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	return result.Processes, nil
}

func (c *Client) Status(name string) (StatusResponse, error) {
	result, resp, err := client.Request[StatusRequest, StatusResponse](c.rpc, CommandStatus, StatusRequest{Name: name})
	if err != nil {
		return StatusResponse{}, err
	}
	if !resp.Success {
		return StatusResponse{}, fmt.Errorf("%s", resp.Error)
	}
	return result, nil
}
