package entity

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseSimple
	VendorID uuid.UUID `db:"vendor_id"`
	Name     string    `db:"name"`
}
