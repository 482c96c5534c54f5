package dxf

import "strconv"

// DefaultLayer is the layer assigned to entities that never see a
// code 8 field.
const DefaultLayer = "0"

// Field is one group code occurrence within an entity record. Fields
// are kept as an ordered sequence because DXF legitimately repeats the
// same code within one entity (polyline vertices, 3DFACE corners).
type Field struct {
	Code  int
	Value string
}

// Record is one assembled DXF entity. Type is the value of the code 0
// marker that opened it; non-geometric markers such as SECTION and
// ENDSEC produce records too and are ignored by the builders.
type Record struct {
	Type   string
	Fields []Field
	Layer  string
	Color  string // raw code 62 value, empty if absent
}

// First returns the first occurrence of code, in file order.
func (r *Record) First(code int) (string, bool) {
	for _, f := range r.Fields {
		if f.Code == code {
			return f.Value, true
		}
	}
	return "", false
}

// Float parses the first occurrence of code as a float.
func (r *Record) Float(code int) (float64, bool) {
	s, ok := r.First(code)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int parses the first occurrence of code as an integer.
func (r *Record) Int(code int) (int, bool) {
	s, ok := r.First(code)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Parse tokenizes data and assembles the token stream into entity
// records. Code 0 closes the open entity and starts the next one; the
// closing entity inherits the ambient layer (code 8, default "0")
// captured at closing time. Code 62 sets the open entity's color. An
// entity still open at end of stream is closed as if by a final
// code 0. No entity is dropped once opened.
func Parse(data []byte) ([]Record, error) {
	tok := NewTokenizer(data)
	var records []Record
	var cur *Record
	layer := DefaultLayer

	flush := func() {
		if cur != nil {
			cur.Layer = layer
			records = append(records, *cur)
		}
	}

	for {
		t, ok, err := tok.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if t.Code == 0 {
			flush()
			cur = &Record{Type: t.Value}
			continue
		}
		if cur == nil {
			// Fields before the first code 0 belong to no entity.
			continue
		}
		cur.Fields = append(cur.Fields, Field{Code: t.Code, Value: t.Value})
		switch t.Code {
		case 8:
			layer = t.Value
		case 62:
			cur.Color = t.Value
		}
	}
	flush()
	return records, nil
}
