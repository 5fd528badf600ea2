package domain

// StyleStandard is always an allowed plugin style.
const StyleStandard = "standard"

// Namespace is a named configuration context scoping events and plugins.
type Namespace struct {
	Name        string   `json:"namespace"`
	AppTitle    string   `json:"app_title"`
	LatestFirst bool     `json:"latest_first"`
	Styles      []string `json:"styles"`
}

// AllowsStyle reports whether style is a configured plugin style.
func (n *Namespace) AllowsStyle(style string) bool {
	if style == StyleStandard {
		return true
	}
	for _, s := range n.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// NamespaceRegistry resolves namespaces by name.
type NamespaceRegistry interface {
	Lookup(name string) (*Namespace, bool)
}

// Namespaces is a NamespaceRegistry backed by a map.
type Namespaces map[string]*Namespace

func (n Namespaces) Lookup(name string) (*Namespace, bool) {
	ns, ok := n[name]
	return ns, ok
}
