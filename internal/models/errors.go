package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Tenant errors
var ErrDueDayOutOfRange = errors.New("the due day must be between 1 and 31")

// Payment errors
var ErrPaymentMethodInvalid = errors.New("the payment method must be one of Cash, GCash, Bank Transfer, Cheque or Other")

// Expense errors
var ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")

// Block errors
var ErrBlockIDNotUnique = errors.New("the block code is already in use")

// User errors
var ErrUsernameNotUnique = errors.New("this username is already registered")
