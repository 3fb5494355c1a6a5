package constant

// Checkout resolves the open-order status row by these values. Exactly one
// row (nama='proses', selesai=false) is expected to exist in the status table.
const (
	CheckoutStatusName     = "proses"
	CheckoutStatusSelesai  = false
	OrderNumberPrefix      = "ORD"
	OrderNumberTimeLayout  = "20060102150405"
	OrderNumberUserIDChars = 4
)

type contextKey string

// IdentityKey carries the authenticated model.Identity in request context.
const IdentityKey contextKey = "identity"

// SessionIDKey carries the validated session id (JWT jti) in request context.
const SessionIDKey contextKey = "session_id"

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "supabase_session"
