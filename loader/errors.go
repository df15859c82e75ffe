package loader

import "errors"

// ErrMalformedOBJ is wrapped by every syntax/range error ParseOBJ returns,
// so callers can distinguish a bad file from an I/O failure with
// errors.Is. Syntax errors also carry the line number and underlying
// cause; an out-of-range face index error names the index and the vertex
// count but not the line.
var ErrMalformedOBJ = errors.New("loader: malformed OBJ")
