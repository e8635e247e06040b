package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrNotReady = errors.New("profile store is still loading")

	ErrSessionNotFound     = errors.New("quiz session not found")
	ErrQuizCompleted       = errors.New("quiz already completed")
	ErrUnexpectedQuizInput = errors.New("input does not match the current quiz step")
	ErrInvalidQuizAnswer   = errors.New("invalid quiz answer")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrProductUnavailable   = errors.New("product is not available in the store")
	ErrBillingUnavailable   = errors.New("billing is not available")
	ErrNoPurchasesToRestore = errors.New("no purchases to restore")
	ErrPurchaseNotVerified  = errors.New("purchase could not be verified")

	ErrNoIngredients        = errors.New("no ingredients provided")
	ErrAssistantDisabled    = errors.New("assistant is not configured")
	ErrConversationNotFound = errors.New("conversation not found")

	ErrRecipeNotFound = errors.New("recipe not found")

	ErrUpstreamFailure = errors.New("upstream service failure")
)
