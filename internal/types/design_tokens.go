package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Token types used in $type
const (
	TokenTypeColor      = "color"
	TokenTypeDimension  = "dimension"
	TokenTypeFontFamily = "fontFamily"
	TokenTypeFontWeight = "fontWeight"
	TokenTypeNumber     = "number"
	TokenTypeShadow     = "shadow"
)

// TokenNode is either a leaf token ($type/$value/$description) or a group of
// nested nodes. A node with non-nil Children is a group.
type TokenNode struct {
	Type        string
	Value       any
	Description string
	Children    TokenGroup
}

// TokenGroup maps token names to nodes.
type TokenGroup map[string]*TokenNode

type tokenLeaf struct {
	Type        string `json:"$type"`
	Value       any    `json:"$value"`
	Description string `json:"$description,omitempty"`
}

// Leaf creates a leaf token.
func Leaf(tokenType string, value any, description string) *TokenNode {
	return &TokenNode{Type: tokenType, Value: value, Description: description}
}

// Group creates a group node.
func Group(children TokenGroup) *TokenNode {
	if children == nil {
		children = TokenGroup{}
	}
	return &TokenNode{Children: children}
}

// IsGroup reports whether the node holds children rather than a value.
func (n *TokenNode) IsGroup() bool {
	return n != nil && n.Children != nil
}

// StringValue returns the leaf value rendered as a string.
func (n *TokenNode) StringValue() string {
	if n == nil || n.Value == nil {
		return ""
	}
	if s, ok := n.Value.(string); ok {
		return s
	}
	return fmt.Sprint(n.Value)
}

// MarshalJSON emits groups as plain objects and leaves in W3C form.
func (n TokenNode) MarshalJSON() ([]byte, error) {
	if n.Children != nil {
		return json.Marshal(n.Children)
	}
	return json.Marshal(tokenLeaf{Type: n.Type, Value: n.Value, Description: n.Description})
}

// UnmarshalJSON treats any object carrying $value as a leaf.
func (n *TokenNode) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, ok := probe["$value"]; ok {
		var leaf tokenLeaf
		if err := json.Unmarshal(data, &leaf); err != nil {
			return err
		}
		n.Type = leaf.Type
		n.Value = leaf.Value
		n.Description = leaf.Description
		n.Children = nil
		return nil
	}
	n.Children = make(TokenGroup, len(probe))
	for key, raw := range probe {
		child := &TokenNode{}
		if err := json.Unmarshal(raw, child); err != nil {
			return fmt.Errorf("token %q: %w", key, err)
		}
		n.Children[key] = child
	}
	return nil
}

// Lookup follows path through nested groups and returns the node, or nil.
func (g TokenGroup) Lookup(path ...string) *TokenNode {
	if len(path) == 0 {
		return nil
	}
	node, ok := g[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return node
	}
	if !node.IsGroup() {
		return nil
	}
	return node.Children.Lookup(path[1:]...)
}

// SortedKeys returns the group's keys in lexical order.
func (g TokenGroup) SortedKeys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Walk visits every leaf in deterministic order.
func (g TokenGroup) Walk(fn func(path []string, leaf *TokenNode)) {
	g.walk(nil, fn)
}

func (g TokenGroup) walk(prefix []string, fn func(path []string, leaf *TokenNode)) {
	for _, key := range g.SortedKeys() {
		node := g[key]
		path := append(append([]string{}, prefix...), key)
		if node.IsGroup() {
			node.Children.walk(path, fn)
			continue
		}
		fn(path, node)
	}
}

// W3CDesignTokens is the full token set in W3C design-tokens structure.
type W3CDesignTokens struct {
	Color        TokenGroup `json:"color"`
	Typography   TokenGroup `json:"typography"`
	Spacing      TokenGroup `json:"spacing"`
	BorderRadius TokenGroup `json:"borderRadius"`
	Shadow       TokenGroup `json:"shadow"`
	Sizing       TokenGroup `json:"sizing"`
}

// Categories returns the token categories keyed by their JSON name.
func (t *W3CDesignTokens) Categories() map[string]TokenGroup {
	return map[string]TokenGroup{
		"color":        t.Color,
		"typography":   t.Typography,
		"spacing":      t.Spacing,
		"borderRadius": t.BorderRadius,
		"shadow":       t.Shadow,
		"sizing":       t.Sizing,
	}
}

// DesignTokens is the flat legacy token shape consumed by older tooling.
type DesignTokens struct {
	Colors       map[string]map[string]string `json:"colors"`
	Typography   LegacyTypography             `json:"typography"`
	Spacing      map[string]string            `json:"spacing"`
	BorderRadius map[string]string            `json:"borderRadius"`
	Shadows      map[string]string            `json:"shadows"`
}

// LegacyTypography is the typography section of DesignTokens.
type LegacyTypography struct {
	FontFamily map[string]string `json:"fontFamily"`
	FontSize   map[string]string `json:"fontSize"`
	FontWeight map[string]string `json:"fontWeight"`
	LineHeight map[string]string `json:"lineHeight"`
}
