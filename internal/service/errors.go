package service

import "errors"

var (
	ErrMissingFields     = errors.New("missing required fields: title, type, serialNumber, date, incomingGroup, username")
	ErrNoPositivePrice   = errors.New("at least one price must be provided")
	ErrSerialNumberTaken = errors.New("product with this serial number already exists")

	ErrProductNotFound = errors.New("product not found")
	ErrGroupNotFound   = errors.New("incoming group not found or no products in this group")
)
