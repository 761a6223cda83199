package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrPermissionQuery means the rights of a user could not be looked up at all,
	// typically because the bot itself lacks the rights to inspect them.
	ErrPermissionQuery = goerr.New("permission query failed")
	ErrBotNotAdmin     = goerr.New("bot is not an admin of the channel")
	ErrInvokerNotAdmin = goerr.New("invoker is not an admin")
	ErrNotGroupChat    = goerr.New("command requires a group channel")
	// ErrMemberGone is returned by a removal when the member is already absent.
	ErrMemberGone        = goerr.New("member is no longer in the channel")
	ErrInvalidToken      = goerr.New("invalid workflow token")
	ErrInvalidTransition = goerr.New("invalid workflow transition")
	ErrRemovalInProgress = goerr.New("removal already in progress for channel")
)
