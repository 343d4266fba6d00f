package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tdjson "github.com/tdewolff/parse/v2/json"
	"github.com/yacobolo/tokenaudit/internal/model"
)

// Top-level keys read from a JSON token file
const (
	keyColors     = "colors"
	keySpacing    = "spacing"
	keyFontSize   = "fontSize"
	keyFontWeight = "fontWeight"
)

var errUnexpectedEOF = errors.New("unexpected end of JSON input")

type nodeKind int

const (
	scalarNode nodeKind = iota
	objectNode
	arrayNode
)

// jsonNode is a JSON value that keeps object keys in document order
type jsonNode struct {
	kind   nodeKind
	text   string // scalar rendering: unquoted string, number or literal
	quoted bool   // scalar was a JSON string
	keys   []string
	items  []*jsonNode
	index  map[string]int // key -> position in keys/items
}

// get returns the value stored under key in an object node
func (n *jsonNode) get(key string) (*jsonNode, bool) {
	if n == nil || n.kind != objectNode {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.items[i], true
}

// set stores value under key. A repeated key keeps its first position and
// takes the last value.
func (n *jsonNode) set(key string, value *jsonNode) {
	if i, ok := n.index[key]; ok {
		n.items[i] = value
		return
	}
	n.index[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.items = append(n.items, value)
}

// render returns the value as a single string: scalars as their text,
// containers as compact JSON.
func (n *jsonNode) render() string {
	var sb strings.Builder
	n.writeCompact(&sb, false)
	return sb.String()
}

func (n *jsonNode) writeCompact(sb *strings.Builder, nested bool) {
	switch n.kind {
	case objectNode:
		sb.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quoteJSON(key))
			sb.WriteByte(':')
			n.items[i].writeCompact(sb, true)
		}
		sb.WriteByte('}')
	case arrayNode:
		sb.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeCompact(sb, true)
		}
		sb.WriteByte(']')
	default:
		if nested && n.quoted {
			sb.WriteString(quoteJSON(n.text))
			return
		}
		sb.WriteString(n.text)
	}
}

// values returns the direct children of a container in document order
func (n *jsonNode) values() []*jsonNode {
	if n == nil || n.kind == scalarNode {
		return nil
	}
	return n.items
}

// ColorToken is a flattened color leaf with its dotted key path
type ColorToken struct {
	Path  string // "brand.100"
	Value string // "#111111"
}

// extractJSONTokens reads colors, spacing, fontSize and fontWeight from a
// JSON token document. A parse failure is recorded as a finding and leaves
// all lists empty.
func extractJSONTokens(content string) Result {
	root, err := decodeJSON(content)
	if err != nil {
		return Result{
			Findings: []model.Finding{{
				Check:    CheckParse,
				Severity: model.SeverityHigh,
				Message:  "JSON parsing error: " + describeParseError(err),
			}},
		}
	}

	var result Result
	if colors, ok := root.get(keyColors); ok {
		result.ColorTokens = flattenColors(colors, "")
		for _, token := range result.ColorTokens {
			result.Values.Colors = append(result.Values.Colors, token.Value)
		}
	}
	if spacing, ok := root.get(keySpacing); ok {
		result.Values.Spacing = renderAll(spacing.values())
	}
	if sizes, ok := root.get(keyFontSize); ok {
		result.Values.FontSizes = renderAll(sizes.values())
	}
	if weights, ok := root.get(keyFontWeight); ok {
		result.Values.FontWeights = renderAll(weights.values())
	}

	return result
}

// flattenColors walks nested color groups to any depth. Objects recurse
// with "key." appended to the prefix, everything else is a leaf.
func flattenColors(node *jsonNode, prefix string) []ColorToken {
	var tokens []ColorToken

	switch node.kind {
	case objectNode:
		for i, key := range node.keys {
			child := node.items[i]
			if child.kind == objectNode {
				tokens = append(tokens, flattenColors(child, prefix+key+".")...)
				continue
			}
			tokens = append(tokens, ColorToken{Path: prefix + key, Value: child.render()})
		}
	case arrayNode:
		for i, child := range node.items {
			tokens = append(tokens, ColorToken{Path: fmt.Sprintf("%s%d", prefix, i), Value: child.render()})
		}
	}

	return tokens
}

func renderAll(nodes []*jsonNode) []string {
	if len(nodes) == 0 {
		return nil
	}
	result := make([]string, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, node.render())
	}
	return result
}

// jsonDecoder builds a jsonNode tree from the tdewolff grammar stream
type jsonDecoder struct {
	p *tdjson.Parser
}

// decodeJSON parses a complete JSON document, rejecting trailing data
func decodeJSON(content string) (*jsonNode, error) {
	d := &jsonDecoder{p: tdjson.NewParser(parse.NewInputString(content))}

	gt, text := d.p.Next()
	root, err := d.value(gt, text)
	if err != nil {
		return nil, err
	}

	if gt, _ := d.p.Next(); gt != tdjson.ErrorGrammar {
		return nil, errors.New("unexpected data after top-level value")
	}
	if err := d.p.Err(); err != nil && err != io.EOF {
		return nil, err
	}

	// The grammar stream tolerates stray commas ({"a":1,} or [,1])
	if err := validateJSON(content); err != nil {
		return nil, err
	}

	return root, nil
}

// validateJSON applies strict JSON syntax to the whole document
func validateJSON(content string) error {
	if json.Valid([]byte(content)) {
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return err
	}
	return errors.New("invalid JSON document")
}

func (d *jsonDecoder) value(gt tdjson.GrammarType, text []byte) (*jsonNode, error) {
	switch gt {
	case tdjson.StartObjectGrammar:
		return d.object()
	case tdjson.StartArrayGrammar:
		return d.array()
	case tdjson.StringGrammar:
		s, err := unquoteJSON(text)
		if err != nil {
			return nil, err
		}
		return &jsonNode{kind: scalarNode, text: s, quoted: true}, nil
	case tdjson.NumberGrammar, tdjson.LiteralGrammar:
		return &jsonNode{kind: scalarNode, text: string(text)}, nil
	default:
		return nil, d.err()
	}
}

func (d *jsonDecoder) object() (*jsonNode, error) {
	node := &jsonNode{kind: objectNode, index: make(map[string]int)}

	for {
		gt, text := d.p.Next()
		switch gt {
		case tdjson.EndObjectGrammar:
			return node, nil
		case tdjson.StringGrammar:
			key, err := unquoteJSON(text)
			if err != nil {
				return nil, err
			}
			vgt, vtext := d.p.Next()
			child, err := d.value(vgt, vtext)
			if err != nil {
				return nil, err
			}
			node.set(key, child)
		default:
			return nil, d.err()
		}
	}
}

func (d *jsonDecoder) array() (*jsonNode, error) {
	node := &jsonNode{kind: arrayNode}

	for {
		gt, text := d.p.Next()
		if gt == tdjson.EndArrayGrammar {
			return node, nil
		}
		child, err := d.value(gt, text)
		if err != nil {
			return nil, err
		}
		node.items = append(node.items, child)
	}
}

// err returns the parser error, mapping a bare EOF inside a value to
// errUnexpectedEOF
func (d *jsonDecoder) err() error {
	err := d.p.Err()
	if err == nil || err == io.EOF {
		return errUnexpectedEOF
	}
	return err
}

// describeParseError formats parser errors on a single line
func describeParseError(err error) string {
	var perr *parse.Error
	if errors.As(err, &perr) {
		return fmt.Sprintf("%s (line %d, column %d)", perr.Message, perr.Line, perr.Column)
	}
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Sprintf("%s (offset %d)", serr.Error(), serr.Offset)
	}
	return err.Error()
}

// unquoteJSON decodes a quoted JSON string token, including escapes
func unquoteJSON(text []byte) (string, error) {
	var s string
	if err := json.Unmarshal(text, &s); err != nil {
		return "", fmt.Errorf("invalid string %s: %w", text, err)
	}
	return s, nil
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `"` + s + `"`
	}
	return string(b)
}
