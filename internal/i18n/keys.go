// internal/i18n/keys.go
package i18n

// Message keys
const (
	// Session
	KeySessionRequired = "session.required"
	KeySessionInvalid  = "session.invalid"
	KeySessionCreated  = "session.created"

	// Mock login
	KeyAuthLoginSuccess  = "auth.login_success"
	KeyAuthLogoutSuccess = "auth.logout_success"
	KeyAuthGuestGreeting = "auth.guest_greeting"

	// Products
	KeyProductNotFound = "product.not_found"
	KeyProduct         = "product"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartUpdated     = "cart.updated"
	KeyCartCleared     = "cart.cleared"

	// Search
	KeySearchNoResults    = "search.no_results"
	KeySearchResultsFound = "search.results_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)
