package chainmap

import (
	"github.com/xaionaro-go/chainmap/errors"
)

var (
	NotFound          = errors.NotFound
	InvalidArgument   = errors.InvalidArgument
	AllocationFailure = errors.AllocationFailure
	TableDeleted      = errors.TableDeleted
	NotImplemented    = errors.NotImplemented
)
