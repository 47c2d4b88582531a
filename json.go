package radix

import goJSON "github.com/goccy/go-json"

// toJSONValue builds the value tree for the subtree rooted at n, supporting
// two serialization modes. Without end markers the result is a recursive
// label->subtree mapping; with end markers every object, the root's
// included, carries an explicit "end" flag alongside a nested "children"
// object.
func toJSONValue(n *node, includeEnds bool) any {
	if n == nil {
		return map[string]any{}
	}
	children := make(map[string]any, len(n.children))
	for _, e := range n.children {
		children[string(e.label)] = toJSONValue(e.child, includeEnds)
	}
	if !includeEnds {
		return children
	}
	return map[string]any{
		"end":      n.isEnd,
		"children": children,
	}
}

// marshalNode renders the subtree rooted at n as a JSON string using the
// requested serialization mode. A nil n (used for an invalid iterator
// position) renders as "{}".
func marshalNode(n *node, includeEnds bool) (string, error) {
	out, err := goJSON.Marshal(toJSONValue(n, includeEnds))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
