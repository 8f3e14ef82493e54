package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidCardOperation = 4003
	CodeDuplicateCardNumber  = 4004
	CodeConstraintViolation  = 4005
	CodeAmountOverflow       = 4006
	CodeSelfTransfer         = 4007
	CodeInvalidRequest       = 4008
	CodeAlreadyExists        = 4009
	CodeInvalidCardNumber    = 4010
	CodeInvalidStatus        = 4011
	CodeInvalidRole          = 4012
	CodeInvalidExpiryDate    = 4013
	CodeInvalidCredentials   = 4101
	CodeUnauthenticated      = 4102
	CodeUnauthorized         = 4031
	CodeCardNotFound         = 4040
	CodeUserNotFound         = 4041
	CodeNotFound             = 4042
	CodeCardLocked           = 4090
	CodeIdempotencyKeyReused = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5003
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a transfer exceeds the source card balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount is not a valid decimal with at most two fraction digits
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when a transfer amount is zero or negative
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrNegativeBalance is returned when a mutation would leave a card below zero
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrAmountOverflow is returned when a credit would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidCardOperation is returned for status changes on expired cards and transfers on non-active cards
	ErrInvalidCardOperation = errors.New("invalid card operation")

	// ErrDuplicateCardNumber is returned when a card number is already issued
	ErrDuplicateCardNumber = errors.New("card number already exists")

	// ErrSelfTransfer is returned when source and destination are the same card
	ErrSelfTransfer = errors.New("source and destination cards must differ")

	// ErrInvalidCardNumber is returned when a card number is not 16 digits
	ErrInvalidCardNumber = errors.New("card number must consist of 16 digits")

	// ErrInvalidStatus is returned for an unknown card status value
	ErrInvalidStatus = errors.New("invalid card status")

	// ErrInvalidRole is returned for an unknown role value
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidExpiryDate is returned when a new card does not expire in the future
	ErrInvalidExpiryDate = errors.New("expiry date must be in the future")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrIdempotencyKeyReused is returned when a request id is replayed with different parameters
	ErrIdempotencyKeyReused = errors.New("request id already used with different parameters")

	// ErrAlreadyExists is returned when a username is already registered
	ErrAlreadyExists = errors.New("user already exists")

	// ErrCardNotFound is returned when a card id does not resolve within the caller's scope
	ErrCardNotFound = errors.New("card not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when a login does not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned when a request carries no valid identity
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized is returned when the identity lacks the required role
	ErrUnauthorized = errors.New("access denied")

	// ErrCardLocked is returned when a card row could not be locked in time
	ErrCardLocked = errors.New("card is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCardOperation):
		return CodeInvalidCardOperation
	case errors.Is(err, ErrDuplicateCardNumber):
		return CodeDuplicateCardNumber
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrNegativeBalance):
		return CodeConstraintViolation
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrInvalidCardNumber):
		return CodeInvalidCardNumber
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrInvalidExpiryDate):
		return CodeInvalidExpiryDate
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrCardNotFound):
		return CodeCardNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrCardLocked):
		return CodeCardLocked
	case errors.Is(err, ErrIdempotencyKeyReused):
		return CodeIdempotencyKeyReused
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status returned to clients
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrCardLocked), errors.Is(err, ErrIdempotencyKeyReused):
		return http.StatusConflict
	case ErrorCode(err) == CodeDatabaseConnection, ErrorCode(err) == CodeInternalServer:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// InvalidOperationReason names why a card cannot be operated on
type InvalidOperationReason string

const (
	ReasonExpired        InvalidOperationReason = "expired"
	ReasonNotActive      InvalidOperationReason = "not_active"
	ReasonTerminalStatus InvalidOperationReason = "terminal_status"
)

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	CardID    uint64
	Amount    string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on card %d: required %s, available %s",
		e.CardID, e.Amount, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"card_id":    e.CardID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(cardID uint64, amount, available string) error {
	return &InsufficientFundsError{
		CardID:    cardID,
		Amount:    amount,
		Available: available,
	}
}

// InvalidCardOperationError describes an operation refused because of the card status
type InvalidCardOperationError struct {
	CardID uint64
	Status string
	Reason InvalidOperationReason
}

// Error implements the error interface
func (e *InvalidCardOperationError) Error() string {
	return fmt.Sprintf("invalid operation on card %d (status %s): %s", e.CardID, e.Status, e.Reason)
}

// Is checks if the target error is an ErrInvalidCardOperation
func (e *InvalidCardOperationError) Is(target error) bool {
	return target == ErrInvalidCardOperation
}

// LogFields returns a map of fields for structured logging
func (e *InvalidCardOperationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_card_operation",
		"card_id":    e.CardID,
		"status":     e.Status,
		"reason":     string(e.Reason),
		"error_code": CodeInvalidCardOperation,
	}
}

// NewInvalidCardOperationError creates an invalid card operation error
func NewInvalidCardOperationError(cardID uint64, status string, reason InvalidOperationReason) error {
	return &InvalidCardOperationError{
		CardID: cardID,
		Status: status,
		Reason: reason,
	}
}

// DuplicateScope tells which uniqueness rule rejected a card number
type DuplicateScope string

const (
	DuplicateScopeGlobal DuplicateScope = "global"
	DuplicateScopeOwner  DuplicateScope = "owner"
)

// DuplicateCardNumberError provides detail about a rejected card issuance
type DuplicateCardNumberError struct {
	MaskedNumber string
	OwnerID      uint64
	Scope        DuplicateScope
}

// Error implements the error interface
func (e *DuplicateCardNumberError) Error() string {
	return fmt.Sprintf("card number %s already exists (%s scope, owner %d)", e.MaskedNumber, e.Scope, e.OwnerID)
}

// Is checks if the target error is an ErrDuplicateCardNumber
func (e *DuplicateCardNumberError) Is(target error) bool {
	return target == ErrDuplicateCardNumber
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateCardNumberError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "duplicate_card_number",
		"card_number": e.MaskedNumber,
		"owner_id":    e.OwnerID,
		"scope":       string(e.Scope),
		"error_code":  CodeDuplicateCardNumber,
	}
}

// NewDuplicateCardNumberError creates a duplicate card number error
func NewDuplicateCardNumberError(maskedNumber string, ownerID uint64, scope DuplicateScope) error {
	return &DuplicateCardNumberError{
		MaskedNumber: maskedNumber,
		OwnerID:      ownerID,
		Scope:        scope,
	}
}

// LogFields extracts structured fields from an error chain, if any error in it provides them
func LogFields(err error) map[string]any {
	var provider interface{ LogFields() map[string]any }
	if errors.As(err, &provider) {
		return provider.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsInvalidCardOperationError checks if the error is an invalid card operation
func IsInvalidCardOperationError(err error) bool {
	return errors.Is(err, ErrInvalidCardOperation)
}

// IsExpiredCardError reports whether the error was raised because the card has expired
func IsExpiredCardError(err error) bool {
	var opErr *InvalidCardOperationError
	return errors.As(err, &opErr) && opErr.Reason == ReasonExpired
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
