package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errNilUUID = errors.New("must be a valid id")

func notNilUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errNilUUID
	}
	return nil
}

var errNegative = errors.New("must not be negative")

func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if ok && d.IsNegative() {
		return errNegative
	}
	return nil
}
