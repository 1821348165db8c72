package dict

import "errors"

var ErrNoServers = errors.New("dict: no servers configured")

// Servers is a static list of mirror servers. Each lookup picks one of
// them; the client still opens a single connection per server it uses.
type Servers struct {
	addrs    []string
	selector ServerSelector
}

// NewServers returns the list of servers, adding the default port where
// missing. It uses DefaultServerSelector.
func NewServers(addrs ...string) *Servers {
	return NewServersWithSelector(DefaultServerSelector, addrs...)
}

// NewServersWithSelector is NewServers with a custom selection function.
func NewServersWithSelector(selector ServerSelector, addrs ...string) *Servers {
	normalized := make([]string, len(addrs))
	for i, addr := range addrs {
		normalized[i] = Address(addr)
	}
	return &Servers{addrs: normalized, selector: selector}
}

// List returns the server addresses
func (s *Servers) List() []string {
	return s.addrs
}

// Select returns the server that should serve key.
func (s *Servers) Select(key string) (string, error) {
	switch len(s.addrs) {
	case 0:
		return "", ErrNoServers
	case 1:
		return s.addrs[0], nil
	}
	return s.addrs[s.selector(key, len(s.addrs))], nil
}
