package settlement

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidInvoiceID indicates the invoice ID is not a UUID.
var ErrInvalidInvoiceID = errors.New("settlement: invalid invoice ID")

func parseInvoiceID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidInvoiceID
	}
	return uid, nil
}
