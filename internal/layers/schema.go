package layers

import "bytes"

// Property is one filterable attribute exposed to the client UI.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PropertySchema is an insertion-ordered mapping of attribute name to
// Property. encoding/json marshals plain maps with sorted keys, but the
// source column order is part of the output contract, hence the custom
// type. Setting an existing name overwrites in place.
type PropertySchema struct {
	names []string
	props map[string]Property
}

// NewPropertySchema returns an empty schema.
func NewPropertySchema() *PropertySchema {
	return &PropertySchema{props: make(map[string]Property)}
}

// Set adds or overwrites the property for name.
func (s *PropertySchema) Set(name string, p Property) {
	if _, ok := s.props[name]; !ok {
		s.names = append(s.names, name)
	}
	s.props[name] = p
}

// Get returns the property for name.
func (s *PropertySchema) Get(name string) (Property, bool) {
	p, ok := s.props[name]
	return p, ok
}

// Names returns the attribute names in insertion order.
func (s *PropertySchema) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of attributes.
func (s *PropertySchema) Len() int { return len(s.names) }

// MarshalJSON writes the schema as a JSON object in insertion order.
func (s *PropertySchema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalNoEscape(s.props[name])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
