package errors

import (
	"github.com/pkg/errors"
)

var (
	NotFound          = errors.New("not found")
	InvalidArgument   = errors.New("invalid argument")
	AllocationFailure = errors.New("allocation failure")
	TableDeleted      = errors.New("the table is already deleted")
	NotImplemented    = errors.New("not implemented")
)
