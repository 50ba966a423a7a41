package localstore

// Storage keys. The cache keys hold whole collections filled from fixtures
// on first access; the session keys hold per-store browsing state.
const (
	keyUsersCache  = "faithcafe_users_cache"
	keyMenuCache   = "faithcafe_menu_cache"
	keyOrdersCache = "faithcafe_orders_cache"

	keyCart          = "cart"
	keyCurrentUser   = "currentUser"
	keyCheckoutItems = "checkoutItems"
	keyTheme         = "theme"
)
