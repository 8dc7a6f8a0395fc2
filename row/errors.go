package row

import "fmt"

// ArityError reports an encoded row whose cell count does not match the
// arity of the row type it is decoded into.
type ArityError struct {
	Want int // arity of the target row type
	Got  int // number of encoded cells
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("row arity mismatch: expected %d cells, got %d", e.Want, e.Got)
}

// CellError wraps a failure to decode the cell at a 1-based position.
type CellError struct {
	Position int
	Name     Name
	Err      error
}

func (e *CellError) Error() string {
	if e.Name.IsSet() {
		return fmt.Sprintf("cell %d (%s): %v", e.Position, e.Name, e.Err)
	}
	return fmt.Sprintf("cell %d: %v", e.Position, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
