package gdb

import (
	"fmt"
	"strconv"
	"strings"
)

// MI result bodies are comma-separated variable=value lists. Values are
// c-strings, tuples in braces, or lists in brackets; list elements may
// themselves be variable=value pairs (the variable repeats the element
// kind, e.g. stack=[frame={...},frame={...}], and is dropped here).
type miValue any

type miTuple map[string]miValue

type miList []miValue

func (t miTuple) str(key string) string {
	v, _ := t[key].(string)
	return v
}

func (t miTuple) list(key string) miList {
	v, _ := t[key].(miList)
	return v
}

// parseResults parses the body of an MI record, such as
//
//	stack=[frame={level="0",addr="0x401136",func="main"}]
func parseResults(body string) (miTuple, error) {
	p := &miParser{input: body}
	tuple := miTuple{}
	for !p.done() {
		key, value, err := p.result()
		if err != nil {
			return nil, err
		}
		tuple[key] = value
		if !p.done() {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
	}
	return tuple, nil
}

type miParser struct {
	input string
	pos   int
}

func (p *miParser) done() bool {
	return p.pos >= len(p.input)
}

func (p *miParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.input[p.pos]
}

func (p *miParser) expect(c byte) error {
	if p.peek() != c {
		return fmt.Errorf("mi parse: want %q at offset %d of %q", c, p.pos, p.input)
	}
	p.pos++
	return nil
}

// result parses one variable=value pair.
func (p *miParser) result() (string, miValue, error) {
	key := p.ident()
	if key == "" {
		return "", nil, fmt.Errorf("mi parse: want variable at offset %d of %q", p.pos, p.input)
	}
	if err := p.expect('='); err != nil {
		return "", nil, err
	}
	value, err := p.value()
	return key, value, err
}

func (p *miParser) value() (miValue, error) {
	switch p.peek() {
	case '"':
		return p.cstring()
	case '{':
		return p.tuple()
	case '[':
		return p.valueList()
	default:
		return nil, fmt.Errorf("mi parse: want value at offset %d of %q", p.pos, p.input)
	}
}

func (p *miParser) tuple() (miTuple, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	tuple := miTuple{}
	for p.peek() != '}' {
		key, value, err := p.result()
		if err != nil {
			return nil, err
		}
		tuple[key] = value
		if p.peek() == ',' {
			p.pos++
		}
	}
	p.pos++
	return tuple, nil
}

func (p *miParser) valueList() (miList, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	var list miList
	for p.peek() != ']' {
		var value miValue
		var err error
		if isIdentByte(p.peek()) {
			_, value, err = p.result()
		} else {
			value, err = p.value()
		}
		if err != nil {
			return nil, err
		}
		list = append(list, value)
		if p.peek() == ',' {
			p.pos++
		}
	}
	p.pos++
	return list, nil
}

// cstring parses a double-quoted value, resolving the escapes gdb emits.
func (p *miParser) cstring() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		if p.done() {
			return "", fmt.Errorf("mi parse: unterminated string in %q", p.input)
		}
		c := p.input[p.pos]
		p.pos++
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if p.done() {
				return "", fmt.Errorf("mi parse: dangling escape in %q", p.input)
			}
			e := p.input[p.pos]
			p.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
}

func (p *miParser) ident() string {
	start := p.pos
	for !p.done() && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseAddr(s string) uint64 {
	addr, _ := strconv.ParseUint(s, 0, 64)
	return addr
}
