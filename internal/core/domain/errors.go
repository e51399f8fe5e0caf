package domain

import "errors"

// Authentication and authorization failures. ErrAuthentication is
// deliberately generic: token verification must not distinguish expired
// from malformed tokens.
var (
	ErrAuthentication     = errors.New("authentication invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("password is incorrect")
	ErrAdminOnly          = errors.New("admin resource, access denied")
	ErrTestUser           = errors.New("test user cannot perform this action")
)

// Staff account errors.
var (
	ErrUserExists   = errors.New("email or phone number is already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// Client and OTP errors.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientExists       = errors.New("email or phone number already belongs to a client")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerRegistered = errors.New("you are already registered, please login")
	ErrSupplierLogin      = errors.New("supplier can not login")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrOTPExpired         = errors.New("otp expired")
	ErrOTPThrottled       = errors.New("otp recently sent, try again later")
)

// Logistics entity errors.
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrContainerNotFound = errors.New("container not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidStatus     = errors.New("invalid status")
)
