package procstore

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shaik-zeeshan/circle/rpc/common"
	"github.com/shaik-zeeshan/circle/rpc/serializer"
	"github.com/shaik-zeeshan/circle/rpc/server"
)

// TestStoreStartStop tests the basic table lifecycle
func TestStoreStartStop(t *testing.T) {
	s := NewStore()

	if err := s.Start("web", "python -m http.server 8080"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := s.Start("web", "other"); err == nil {
		t.Error("Expected error starting duplicate process")
	} else if !strings.Contains(err.Error(), "already running") {
		t.Errorf("Unexpected error: %v", err)
	}

	entry, ok := s.Lookup("web")
	if !ok {
		t.Fatal("Lookup failed after Start")
	}
	if entry.Command != "python -m http.server 8080" {
		t.Errorf("Command mismatch: got '%s'", entry.Command)
	}

	if err := s.Stop("web"); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := s.Stop("web"); err == nil {
		t.Error("Expected error stopping unknown process")
	}
}

// TestStoreList tests that List snapshots all entries
func TestStoreList(t *testing.T) {
	s := NewStore()

	if err := s.Start("a", "cmd-a"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Start("b", "cmd-b"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("Expected 2 processes, got %d", len(list))
	}
	if list["a"] != "cmd-a" || list["b"] != "cmd-b" {
		t.Errorf("List mismatch: %v", list)
	}
}

// TestStoreConcurrentStart tests that concurrent starts of the same name
// admit exactly one winner
func TestStoreConcurrentStart(t *testing.T) {
	s := NewStore()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Start("contested", "cmd")
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Errorf("Expected exactly one successful start, got %d", succeeded)
	}
}

// TestDaemonRoundTrip tests the full daemon flow through the typed client
func TestDaemonRoundTrip(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "procstore.sock")

	config := common.NewServerConfig(socketPath)
	config.TimeoutSecond = 5

	srv := server.NewSocketServer(config, serializer.NewJSONSerializer())
	NewStore().RegisterHandlers(srv)

	go func() {
		if err := srv.Serve(); err != nil {
			t.Errorf("Serve failed: %v", err)
		}
	}()
	t.Cleanup(func() { srv.Close() })

	clientConfig := common.NewClientConfig(socketPath)
	clientConfig.TimeoutSecond = 5
	c := NewClient(clientConfig)

	// Wait for the daemon to come up
	deadline := time.Now().Add(5 * time.Second)
	var listErr error
	for time.Now().Before(deadline) {
		if _, listErr = c.List(); listErr == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if listErr != nil {
		t.Fatalf("Daemon did not come up: %v", listErr)
	}

	msg, err := c.Start("web", "python -m http.server 8080")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !strings.Contains(msg, "web") {
		t.Errorf("Start message does not name the process: %s", msg)
	}

	if _, err := c.Start("web", "again"); err == nil {
		t.Error("Expected error starting duplicate process over RPC")
	}

	status, err := c.Status("web")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Command != "python -m http.server 8080" {
		t.Errorf("Status command mismatch: got '%s'", status.Command)
	}

	list, err := c.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 process, got %d", len(list))
	}

	if _, err := c.Stop("web"); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if _, err := c.Status("web"); err == nil {
		t.Error("Expected error querying stopped process")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}
