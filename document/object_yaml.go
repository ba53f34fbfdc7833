package document

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"
)

// UnmarshalYAML decodes a YAML mapping while preserving key order by walking
// the node tree directly instead of unmarshaling into an unordered map.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	obj, err := objectFromNode(node)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

// MarshalYAML emits the entries as a mapping node in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	return o.yamlNode()
}

func objectFromNode(node *yaml.Node) (*Object, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return objectFromNode(node.Content[0])
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return objectFromNode(node.Alias)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document: expected mapping at line %d, got %s", node.Line, nodeKindName(node.Kind))
	}

	obj := NewObject()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("document: mapping key at line %d must be a scalar", keyNode.Line)
		}
		value, err := valueFromNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj.Set(keyNode.Value, value)
	}
	return obj, nil
}

func valueFromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return valueFromNode(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, nil
		}
		return valueFromNode(node.Alias)
	case yaml.MappingNode:
		return objectFromNode(node)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := valueFromNode(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

func (o *Object) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, value := range o.Entries() {
		valueNode, err := nodeForValue(value)
		if err != nil {
			return nil, fmt.Errorf("document: marshaling value of %q: %w", key, err)
		}
		node.Content = append(node.Content, scalarNode("!!str", key), valueNode)
	}
	return node, nil
}

func nodeForValue(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case *Object:
		return value.yamlNode()
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value {
			child, err := nodeForValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case map[string]any:
		// Plain maps only appear in programmatically built trees; sort their
		// keys so output is deterministic.
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			child, err := nodeForValue(value[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	default:
		node := new(yaml.Node)
		if err := node.Encode(value); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
