package service

import (
	"strings"

	"github.com/google/uuid"
)

const OrderIDPrefix = "ORD"

// OrderIDGenerator mints human-readable order ids. Ids are not checked for
// uniqueness by the generator itself.
type OrderIDGenerator interface {
	NewOrderID() string
}

// RandomOrderIDs yields "ORD" followed by 8 upper-case hex digits of a v4 UUID.
type RandomOrderIDs struct{}

func (RandomOrderIDs) NewOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return OrderIDPrefix + strings.ToUpper(hex[:8])
}
