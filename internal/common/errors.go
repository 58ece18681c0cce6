package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Post errors
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrNicknameExists     = errors.New("nickname already exists")
	ErrAccountSuspended   = errors.New("account suspended")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Verification errors
	ErrVerificationNotFound = errors.New("verification not found")
	ErrVerificationImage    = errors.New("verification image required")
	ErrAlreadyProcessed     = errors.New("verification already processed")
	ErrDailyLimitExceeded   = errors.New("daily post limit exceeded")

	// Point store errors
	ErrItemNotFound       = errors.New("point item not found")
	ErrAlreadyPurchased   = errors.New("item already purchased")
	ErrInsufficientPoints = errors.New("insufficient points")

	// Social errors
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
	ErrNotLiked         = errors.New("not liked")

	// Report errors
	ErrReportNotFound = errors.New("report not found")
	ErrSelfReport     = errors.New("cannot report your own post")
)
