package service

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrAccountNotSendable   = errors.New("account is not active and verified")
	ErrDailyLimitExceeded   = errors.New("daily message limit exceeded")
	ErrMonthlyLimitExceeded = errors.New("monthly message limit exceeded")
	ErrRateLimited          = errors.New("per-minute rate limit exceeded")
	ErrTemplateNotApproved  = errors.New("template is not approved")
	ErrVerifyTokenMismatch  = errors.New("webhook verify token mismatch")
	ErrNoProviderAvailable  = errors.New("no email provider available")
	ErrSendFailed           = errors.New("provider send failed")
)
