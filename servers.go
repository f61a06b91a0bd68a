package memcache

// Servers provides the list of server addresses the client distributes
// keys over.
type Servers interface {
	// List returns the current server addresses. Order matters: the
	// selector maps keys to indexes into this list.
	List() []string
}

// StaticServers is a fixed list of server addresses.
type StaticServers struct {
	addrs []string
}

// NewStaticServers creates a Servers from a fixed address list.
func NewStaticServers(addrs ...string) *StaticServers {
	return &StaticServers{addrs: addrs}
}

func (s *StaticServers) List() []string {
	return s.addrs
}
