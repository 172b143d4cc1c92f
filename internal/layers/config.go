package layers

import (
	"bytes"
	"encoding/json"
	"io"
)

// Config is the generated layer configuration document. Layers keep
// the order they were added in, which follows the request order, so
// regenerating with identical inputs yields byte-identical output.
type Config struct {
	Version     string
	Description string

	keys   []string
	layers map[string]Descriptor
}

// NewConfig returns an empty configuration with the fixed version tag
// and description.
func NewConfig() *Config {
	return &Config{
		Version:     ConfigVersion,
		Description: ConfigDescription,
		layers:      make(map[string]Descriptor),
	}
}

// Add inserts the descriptor under key. Re-adding a key overwrites in
// place without changing its position.
func (c *Config) Add(key string, d Descriptor) {
	if _, ok := c.layers[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.layers[key] = d
}

// Layer returns the descriptor stored under key, or nil.
func (c *Config) Layer(key string) Descriptor {
	return c.layers[key]
}

// Keys returns the layer keys in insertion order.
func (c *Config) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of layers.
func (c *Config) Len() int { return len(c.keys) }

// MarshalJSON writes the document with layers in insertion order.
// Attribution strings carry HTML anchors, so escaping is disabled.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"version":`)
	v, err := marshalNoEscape(c.Version)
	if err != nil {
		return nil, err
	}
	buf.Write(v)
	buf.WriteString(`,"description":`)
	d, err := marshalNoEscape(c.Description)
	if err != nil {
		return nil, err
	}
	buf.Write(d)
	buf.WriteString(`,"layers":{`)
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		l, err := marshalNoEscape(c.layers[key])
		if err != nil {
			return nil, err
		}
		buf.Write(l)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// Encode writes the document to w with four-space indentation.
func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
