package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrAccessDenied means the actor is authenticated but is neither the
	// record owner nor an admin.
	ErrAccessDenied = errors.New("access denied")

	// ErrBuyerReferenced blocks buyer deletion while orders still reference
	// the buyer.
	ErrBuyerReferenced = errors.New("buyer has referencing orders")

	// ErrInvalidSubtotal means the subtotal is not a positive multiple of the
	// unit price.
	ErrInvalidSubtotal = errors.New("invalid subtotal")

	// ErrUnknownBuyer rejects an order write naming a buyer that does not
	// exist. Distinct from ErrRecordNotFound: the order endpoint reports it as
	// a client error about the payload, not as a missing order.
	ErrUnknownBuyer = errors.New("unknown buyer")
)
