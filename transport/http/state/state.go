package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace_period"
	case ServerStateInCleanupPeriod:
		return "cleanup_period"
	default:
		return "starting"
	}
}

// Server holds the lifecycle state shared by the HTTP server and the health
// endpoint. Safe for concurrent use.
type Server struct {
	state atomic.Int32
}

func New() *Server {
	return &Server{}
}

func (s *Server) Set(state ServerState) {
	s.state.Store(int32(state))
}

func (s *Server) Get() ServerState {
	return ServerState(s.state.Load())
}

func (s *Server) ShuttingDown() bool {
	current := s.Get()

	return current == ServerStateInGracePeriod || current == ServerStateInCleanupPeriod
}
