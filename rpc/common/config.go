package common

import (
	"fmt"
	"strings"
)

const (
	// DefaultSocketPath is the well-known path used when none is configured.
	DefaultSocketPath = "/tmp/circle.sock"

	// DefaultTimeoutSecond is the default timeout for connect and read.
	DefaultTimeoutSecond = 30
)

// --------------------------------------------------------------------------
// RPC server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the socket server.
// It is constructed once per server instance and immutable thereafter.
type ServerConfig struct {
	// SocketPath is the filesystem path of the Unix domain socket
	SocketPath string

	// TimeoutSecond bounds the per-connection read and write independently.
	// Zero disables the server-side deadline.
	TimeoutSecond int64

	// Logging configuration
	LogLevel string
}

// NewServerConfig creates a server configuration for the given socket path
// with the default timeout.
func NewServerConfig(socketPath string) ServerConfig {
	return ServerConfig{
		SocketPath:    socketPath,
		TimeoutSecond: DefaultTimeoutSecond,
		LogLevel:      "info",
	}
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Socket Server")
	addField("Socket Path", c.SocketPath)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the socket client.
type ClientConfig struct {
	// SocketPath is the filesystem path of the Unix domain socket
	SocketPath string

	// TimeoutSecond bounds connect and read independently, not their sum.
	// Zero disables both timeouts.
	TimeoutSecond int64
}

// NewClientConfig creates a client configuration for the given socket path
// with the default timeout.
func NewClientConfig(socketPath string) ClientConfig {
	return ClientConfig{
		SocketPath:    socketPath,
		TimeoutSecond: DefaultTimeoutSecond,
	}
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Socket Path", c.SocketPath)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	return sb.String()
}
