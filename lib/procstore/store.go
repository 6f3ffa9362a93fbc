package procstore

import (
	"fmt"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("procstore")

// Entry is one managed process: the command line it was started with and
// when it was registered.
type Entry struct {
	Command   string
	StartedAt time.Time
}

// Store is an in-memory table of named processes. It is shared by all
// handler invocations, so all access goes through the concurrent map.
type Store struct {
	processes *xsync.MapOf[string, Entry]
}

// NewStore creates an empty process store.
func NewStore() *Store {
	return &Store{
		processes: xsync.NewMapOf[string, Entry](),
	}
}

// --------------------------------------------------------------------------
// Table Operations
// --------------------------------------------------------------------------

// Start registers a named process. It fails if the name is already taken.
func (s *Store) Start(name, command string) error {
	entry := Entry{Command: command, StartedAt: time.Now()}

	if _, loaded := s.processes.LoadOrStore(name, entry); loaded {
		return fmt.Errorf("process '%s' already running", name)
	}

	Logger.Infof("Started process: %s -> %s", name, command)
	return nil
}

// Stop removes a named process. It fails if the name is unknown.
func (s *Store) Stop(name string) error {
	if _, loaded := s.processes.LoadAndDelete(name); !loaded {
		return fmt.Errorf("process '%s' not found", name)
	}

	Logger.Infof("Stopped process: %s", name)
	return nil
}

// List returns a snapshot of all processes as name -> command line.
func (s *Store) List() map[string]string {
	snapshot := make(map[string]string)
	s.processes.Range(func(name string, entry Entry) bool {
		snapshot[name] = entry.Command
		return true
	})
	return snapshot
}

// Lookup returns the entry for a named process, if it exists.
func (s *Store) Lookup(name string) (Entry, bool) {
	return s.processes.Load(name)
}
