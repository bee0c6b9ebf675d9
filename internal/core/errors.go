package core

import (
	"errors"
)

var (
	ErrMandateNotFound     = errors.New("mandate not found")
	ErrMandateExists       = errors.New("an active mandate already exists for this project and musician")
	ErrReferenceCollision  = errors.New("mandate reference already taken")
	ErrReferenceGeneration = errors.New("cannot generate mandate reference")
	ErrDecryption          = errors.New("mandate field decryption failed")
	ErrEncryptedFields     = errors.New("mandate fields are still encrypted")
	ErrEmptyBatch          = errors.New("no candidate mandates selected")
	ErrAmount              = errors.New("debit amount must be positive")
	ErrPurposeLength       = errors.New("purpose line exceeds 35 characters")
	ErrPurposeCharset      = errors.New("purpose line contains non-SEPA characters")
	ErrRunNotFound         = errors.New("debit run not found")
)
