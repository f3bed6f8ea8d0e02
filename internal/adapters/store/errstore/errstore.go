package errstore

import "errors"

var (
	ErrNotFoundData     = errors.New("data not found")
	ErrPhoneNotUnique   = errors.New("phone is already registered")
	ErrAlreadyPurchased = errors.New("class already purchased by user")
	ErrStateChanged     = errors.New("record state changed concurrently")
)
