package sistrum

/*
MIT License

Copyright (c) 2019-2022 The sistrum authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

import (
	"fmt"
	"sort"
	"strconv"
)

/*ValueConverter is the bidirectional mapping between a wire-format token and
an API-level value. For every converter, ToAPI(ToRaw(x)) == x must hold over
the converter's declared domain; wire encodings that denote different values
depending on context (see OutputRateConverter) are exempt and documented as
lossy without that context.*/
type ValueConverter interface {
	//ToAPI converts a token from the wire into an API-visible value.
	ToAPI(raw string) (interface{}, error)
	//ToRaw converts an API-visible value into a token for transmission.
	ToRaw(v interface{}) (string, error)
}

/*IntConverter maps decimal wire tokens to int values.*/
type IntConverter struct{}

/*ToAPI conforms to ValueConverter*/
func (IntConverter) ToAPI(raw string) (interface{}, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("sis: %q is not an integer token", raw)
	}
	return n, nil
}

/*ToRaw conforms to ValueConverter*/
func (IntConverter) ToRaw(v interface{}) (string, error) {
	n, ok := v.(int)
	if !ok {
		return "", fmt.Errorf("sis: expected int, got %T", v)
	}
	return strconv.Itoa(n), nil
}

/*BoolConverter maps "0"/"1" wire tokens to bool values. Any nonzero decimal
token reads as true, which matches what the hardware emits.*/
type BoolConverter struct{}

/*ToAPI conforms to ValueConverter*/
func (BoolConverter) ToAPI(raw string) (interface{}, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("sis: %q is not a boolean token", raw)
	}
	return n != 0, nil
}

/*ToRaw conforms to ValueConverter*/
func (BoolConverter) ToRaw(v interface{}) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("sis: expected bool, got %T", v)
	}
	if b {
		return "1", nil
	}
	return "0", nil
}

/*EnumConverter maps a finite table of wire tokens to API values. The API
values must be comparable, and the mapping must be one-to-one for round
tripping to hold.*/
type EnumConverter struct {
	mapping map[string]interface{}
	keys    []string //sorted, for deterministic reverse lookup
}

/*NewEnumConverter builds an EnumConverter from a wire-token to value map.*/
func NewEnumConverter(mapping map[string]interface{}) *EnumConverter {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &EnumConverter{mapping: mapping, keys: keys}
}

/*ToAPI conforms to ValueConverter*/
func (c *EnumConverter) ToAPI(raw string) (interface{}, error) {
	v, ok := c.mapping[raw]
	if !ok {
		return nil, fmt.Errorf("sis: no enum value for token %q", raw)
	}
	return v, nil
}

/*ToRaw conforms to ValueConverter*/
func (c *EnumConverter) ToRaw(v interface{}) (string, error) {
	for _, k := range c.keys {
		if c.mapping[k] == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("sis: no enum token for value %v", v)
}
