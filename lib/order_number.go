package lib

import "github.com/google/uuid"

const (
	orderNumberPrefix  = "DR-"
	orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength  = 4
)

// OrderNumber derives the short, human readable number of an order from its id,
// e.g. DR-K7QA. The same id always yields the same number.
func OrderNumber(id uuid.UUID) string {
	suffix := make([]byte, orderNumberLength)
	for i := range suffix {
		suffix[i] = orderNumberCharset[int(id[i])%len(orderNumberCharset)]
	}
	return orderNumberPrefix + string(suffix)
}
