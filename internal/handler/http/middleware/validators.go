package middleware

// OriginValidator decides whether a request origin may participate in CORS.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// AllowAllValidator permits every origin. This is the default policy; the
// API serves public read-mostly data and carries no credentials.
type AllowAllValidator struct{}

func (AllowAllValidator) IsAllowed(string) bool { return true }

// WhitelistValidator permits only origins from a fixed list.
// Comparison is exact, including scheme and port.
type WhitelistValidator struct {
	Origins []string
}

func (v WhitelistValidator) IsAllowed(origin string) bool {
	for _, o := range v.Origins {
		if o == origin {
			return true
		}
	}
	return false
}
