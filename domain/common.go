package domain

import (
	"errors"
)

const (
	RoleFarmer      = "farmer"
	RoleDistributor = "distributor"
	RoleConsumer    = "consumer"
	RoleRetailer    = "retailer"
	RoleRegulator   = "regulator"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Roles lists every role known to the portal.
var Roles = []string{RoleFarmer, RoleDistributor, RoleConsumer, RoleRetailer, RoleRegulator}
