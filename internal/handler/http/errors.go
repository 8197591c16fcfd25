package http

import "errors"

// errFieldValueTooLong is returned for a non-file form field larger than
// maxFieldSize. It is always wrapped with service.ErrMalformedRequest.
var errFieldValueTooLong = errors.New("form field value too long")
