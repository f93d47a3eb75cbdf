/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// nodeKind is the JSON type of a decoded value.
type nodeKind int

const (
	objectNode nodeKind = iota
	arrayNode
	stringNode
	numberNode
	boolNode
	nullNode
)

// node is a decoded JSON value with the 1-based position of its first byte.
// Object members are kept in source order as alternating key and value nodes,
// so duplicate keys survive decoding.
type node struct {
	kind    nodeKind
	value   string
	line    int
	column  int
	content []*node
}

// decodeTree decodes a single JSON document into a node tree.
func decodeTree(data []byte) (*node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := decodeValue(dec, data)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the root value at offset %d", dec.InputOffset())
	}
	return root, nil
}

func decodeValue(dec *json.Decoder, data []byte) (*node, error) {
	n := &node{}
	n.line, n.column = position(data, tokenStart(data, dec.InputOffset()))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n.kind = objectNode
			for dec.More() {
				key := &node{kind: stringNode}
				key.line, key.column = position(data, tokenStart(data, dec.InputOffset()))
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				s, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key at line %d is not a string", key.line)
				}
				key.value = s

				value, err := decodeValue(dec, data)
				if err != nil {
					return nil, err
				}
				n.content = append(n.content, key, value)
			}
		case '[':
			n.kind = arrayNode
			for dec.More() {
				value, err := decodeValue(dec, data)
				if err != nil {
					return nil, err
				}
				n.content = append(n.content, value)
			}
		default:
			return nil, fmt.Errorf("unexpected %q at line %d", t, n.line)
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	case string:
		n.kind = stringNode
		n.value = t
	case json.Number:
		n.kind = numberNode
		n.value = t.String()
	case bool:
		n.kind = boolNode
		n.value = strconv.FormatBool(t)
	case nil:
		n.kind = nullNode
		n.value = "null"
	}
	return n, nil
}

// tokenStart skips the separators between the decoder position and the next token.
func tokenStart(data []byte, offset int64) int64 {
	for offset < int64(len(data)) {
		switch data[offset] {
		case ' ', '\t', '\r', '\n', ',', ':':
			offset++
		default:
			return offset
		}
	}
	return offset
}
