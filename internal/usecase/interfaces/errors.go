package interfaces

import "errors"

// ErrAlreadyExists is returned by conditional creates when the aggregate key
// (contract+direction, contractor+period, organization+period) is already
// taken. The uniqueness lives in the storage condition, not in a read-check.
var ErrAlreadyExists = errors.New("record already exists")
