package glint

import "strings"

// node is a command tree node: an optional runnable payload plus a name to
// child mapping. A node with a nil payload is a pure routing node that only
// hosts subcommands.
type node[T any] struct {
	cmd      *Command[T]
	children map[string]node[T]
}

func newNode[T any]() node[T] {
	return node[T]{children: make(map[string]node[T])}
}

// insert attaches cmd at path, creating routing nodes for missing
// intermediate segments. The child maps along the path are cloned so
// previously derived trees keep observing their old state. Inserting at an
// existing path replaces the payload but keeps the subtree.
func (n node[T]) insert(path []string, cmd Command[T]) node[T] {
	if len(path) == 0 {
		n.cmd = &cmd
		return n
	}
	children := make(map[string]node[T], len(n.children)+1)
	for name, child := range n.children {
		children[name] = child
	}
	child, ok := children[path[0]]
	if !ok {
		child = newNode[T]()
	}
	children[path[0]] = child.insert(path[1:], cmd)
	n.children = children
	return n
}

// sanitizePath trims whitespace per segment and drops empty segments
func sanitizePath(path []string) []string {
	clean := make([]string, 0, len(path))
	for _, segment := range path {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		clean = append(clean, segment)
	}
	return clean
}
