package buah

import "errors"

var ErrBuahNotFound = errors.New("buah not found")
