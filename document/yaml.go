package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/erraggy/oasdoc/oaserrors"
	"go.yaml.in/yaml/v4"
)

const (
	// maxYAMLDepth bounds nesting so self-referencing anchors cannot recurse
	// forever.
	maxYAMLDepth = 512

	// maxAliasNodes bounds the total number of nodes produced by expanding
	// aliases, so nested anchors cannot multiply a small input into a huge
	// document.
	maxAliasNodes = 100_000
)

// MarshalYAML encodes v as YAML, keeping object key order.
func MarshalYAML(v Value) ([]byte, error) {
	node, err := valueToNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// YAML encodes the document as YAML, keeping key order.
func (d *Document) YAML() ([]byte, error) {
	return MarshalYAML(d.Root())
}

// ParseYAML decodes a single YAML (or JSON) value, keeping mapping key order.
func ParseYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid YAML", Cause: err}
	}
	if node.Kind == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}
	return FromNode(&node)
}

// Parse decodes a document from JSON or YAML. Input starting with "{" is read
// as JSON, anything else as YAML. The top-level value must be an object.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	var (
		v   Value
		err error
	)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		v, err = ParseJSON(trimmed)
	} else {
		v, err = ParseYAML(trimmed)
	}
	if err != nil {
		return nil, err
	}
	root, ok := v.(*Object)
	if !ok {
		return nil, &oaserrors.ParseError{Message: "document root must be an object, got " + v.Kind().String()}
	}
	return FromObject(root), nil
}

// FromNode converts a decoded YAML node tree into a Value.
func FromNode(node *yaml.Node) (Value, error) {
	var c nodeConverter
	return c.convert(node, 0, false)
}

// nodeConverter tracks how many nodes alias expansion has produced.
type nodeConverter struct {
	aliasNodes int
}

func (c *nodeConverter) convert(node *yaml.Node, depth int, inAlias bool) (Value, error) {
	if node == nil {
		return Null{}, nil
	}
	if depth > maxYAMLDepth {
		return nil, &oaserrors.ParseError{Line: node.Line, Message: "nesting too deep"}
	}
	if inAlias {
		c.aliasNodes++
		if c.aliasNodes > maxAliasNodes {
			return nil, &oaserrors.ParseError{Line: node.Line, Message: fmt.Sprintf("alias expansion exceeds %d nodes", maxAliasNodes)}
		}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return c.convert(node.Content[0], depth+1, inAlias)

	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &oaserrors.ParseError{Line: keyNode.Line, Message: "mapping key must be a scalar"}
			}
			v, err := c.convert(node.Content[i+1], depth+1, inAlias)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := make(Array, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := c.convert(child, depth+1, inAlias)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case yaml.AliasNode:
		return c.convert(node.Alias, depth+1, true)

	case yaml.ScalarNode:
		var x any
		if err := node.Decode(&x); err != nil {
			return nil, &oaserrors.ParseError{Line: node.Line, Message: "invalid scalar", Cause: err}
		}
		return FromAny(x)

	default:
		return nil, &oaserrors.ParseError{Line: node.Line, Message: fmt.Sprintf("unsupported YAML node kind %d", node.Kind)}
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func valueToNode(v Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return scalarNode("!!null", "null"), nil
		}
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: make([]*yaml.Node, 0, 2*t.Len()),
		}
		for _, k := range t.keys {
			child, err := valueToNode(t.values[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	case Array:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, 0, len(t)),
		}
		for _, item := range t {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case String:
		return scalarNode("!!str", string(t)), nil
	case Number:
		f := float64(t)
		switch {
		case math.IsNaN(f):
			return scalarNode("!!float", ".nan"), nil
		case math.IsInf(f, 1):
			return scalarNode("!!float", ".inf"), nil
		case math.IsInf(f, -1):
			return scalarNode("!!float", "-.inf"), nil
		case t.IsInteger():
			return scalarNode("!!int", strconv.FormatInt(int64(f), 10)), nil
		default:
			return scalarNode("!!float", strconv.FormatFloat(f, 'g', -1, 64)), nil
		}
	case Bool:
		return scalarNode("!!bool", strconv.FormatBool(bool(t))), nil
	case Null, nil:
		return scalarNode("!!null", "null"), nil
	default:
		return nil, fmt.Errorf("document: unsupported value type %T", v)
	}
}
