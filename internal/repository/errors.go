package repository

import "errors"

var (
	ErrNotFound               = errors.New("record not found")
	ErrInstallmentAlreadyPaid = errors.New("installment is already paid")
)
