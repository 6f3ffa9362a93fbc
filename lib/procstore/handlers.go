package procstore

import (
	"fmt"
	"time"

	"github.com/shaik-zeeshan/circle/rpc/server"
)

// Command names the store registers handlers under.
const (
	CommandStart  = "start"
	CommandStop   = "stop"
	CommandList   = "list"
	CommandStatus = "status"
)

// --------------------------------------------------------------------------
// Request/Response Shapes
// --------------------------------------------------------------------------

// These records are embedded as the data field of the envelopes. The RPC
// core makes no assumption about them beyond JSON-serializability.

type StartRequest struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

type StartResponse struct {
	Message string `json:"message"`
}

type StopRequest struct {
	Name string `json:"name"`
}

type StopResponse struct {
	Message string `json:"message"`
}

type ListRequest struct{}

type ListResponse struct {
	Message   string            `json:"message"`
	Processes map[string]string `json:"processes"`
}

type StatusRequest struct {
	Name string `json:"name"`
}

type StatusResponse struct {
	Name          string `json:"name"`
	Command       string `json:"command"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// --------------------------------------------------------------------------
// Handler Registration
// --------------------------------------------------------------------------

// RegisterHandlers registers all process-store handlers on the given server.
// Call before Serve so every accepted connection observes the full command set.
func (s *Store) RegisterHandlers(srv *server.SocketServer) {
	srv.RegisterHandler(CommandStart, server.TypedHandler(s.handleStart))
	srv.RegisterHandler(CommandStop, server.TypedHandler(s.handleStop))
	srv.RegisterHandler(CommandList, server.TypedHandler(s.handleList))
	srv.RegisterHandler(CommandStatus, server.TypedHandler(s.handleStatus))
}

func (s *Store) handleStart(req StartRequest) (StartResponse, error) {
	if err := s.Start(req.Name, req.Command); err != nil {
		return StartResponse{}, err
	}
	return StartResponse{Message: fmt.Sprintf("Process '%s' started", req.Name)}, nil
}

func (s *Store) handleStop(req StopRequest) (StopResponse, error) {
	if err := s.Stop(req.Name); err != nil {
		return StopResponse{}, err
	}
	return StopResponse{Message: fmt.Sprintf("Process '%s' stopped", req.Name)}, nil
}

func (s *Store) handleList(_ ListRequest) (ListResponse, error) {
	processes := s.List()
	return ListResponse{
		Message:   fmt.Sprintf("%d running processes", len(processes)),
		Processes: processes,
	}, nil
}

func (s *Store) handleStatus(req StatusRequest) (StatusResponse, error) {
	entry, ok := s.Lookup(req.Name)
	if !ok {
		return StatusResponse{}, fmt.Errorf("process '%s' not found", req.Name)
	}

	return StatusResponse{
		Name:          req.Name,
		Command:       entry.Command,
		UptimeSeconds: int64(time.Since(entry.StartedAt) / time.Second),
	}, nil
}
