package pagination

import (
	"errors"
	"fmt"
)

// MaxResultWindow bounds offset+size. Deeper pages are refused by the search backend.
const MaxResultWindow = 10_000

var (
	ErrNegativeSize   = errors.New("size must not be negative")
	ErrNegativeOffset = errors.New("offset must not be negative")
)

// OffsetRequest is a from/size page over a ranked result list.
type OffsetRequest struct {
	Offset int
	Size   int
}

func (r OffsetRequest) Validate() error {
	if r.Size < 0 {
		return ErrNegativeSize
	}
	if r.Offset < 0 {
		return ErrNegativeOffset
	}
	if r.Size > MaxResultWindow || r.Offset > MaxResultWindow-r.Size {
		return fmt.Errorf("offset + size must not exceed %d", MaxResultWindow)
	}
	return nil
}
