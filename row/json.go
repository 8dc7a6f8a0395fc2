package row

import (
	"bytes"
	"encoding/json"
)

// jsonCell is the wire form of one cell.
type jsonCell struct {
	Name  Name `json:"name"`
	Value any  `json:"value"`
}

// rawCell defers decoding of the value until its position's type is known.
type rawCell struct {
	Name  Name            `json:"name"`
	Value json.RawMessage `json:"value"`
}

// marshalCells encodes r as an ordered array of {name, value} objects.
func marshalCells(r Row) ([]byte, error) {
	cells := make([]jsonCell, r.Arity())
	for i := range cells {
		v, n := r.cellAt(i + 1)
		cells[i] = jsonCell{Name: n, Value: v}
	}
	return json.Marshal(cells)
}

// unmarshalCells splits an encoded row into exactly arity raw cells.
// A JSON null yields no cells and no error, leaving the row unchanged.
func unmarshalCells(data []byte, arity int) ([]rawCell, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var raw []rawCell
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) != arity {
		return nil, &ArityError{Want: arity, Got: len(raw)}
	}
	return raw, nil
}

// decodeCell decodes raw into the typed cell at 1-based position pos.
// A missing or null value leaves the zero value of T.
func decodeCell[T any](raw rawCell, pos int, dst *cell[T]) error {
	var c cell[T]
	c.name = raw.Name
	if len(raw.Value) > 0 {
		if err := json.Unmarshal(raw.Value, &c.value); err != nil {
			return &CellError{Position: pos, Name: raw.Name, Err: err}
		}
	}
	*dst = c
	return nil
}
