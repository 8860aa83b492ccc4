// Package username holds the pure parts of the username policy: the
// normalization, format, and reserved-word rules a candidate handle must
// satisfy before the storage layer is ever consulted.
package username

import "strings"

const (
	// MinLength and MaxLength bound the accepted username length.
	MinLength = 3
	MaxLength = 20

	// defaultBaseMaxLength truncates the generated base so numeric
	// disambiguation suffixes still fit inside MaxLength.
	defaultBaseMaxLength = 15

	// fallbackBase is used when an identity's contact address strips down
	// to fewer than MinLength usable characters.
	fallbackBase = "user"
)

// FormatReason identifies which format rule a candidate violated.
type FormatReason string

const (
	TooShort          FormatReason = "TOO_SHORT"
	TooLong           FormatReason = "TOO_LONG"
	InvalidCharacters FormatReason = "INVALID_CHARACTERS"
	EdgeHyphen        FormatReason = "EDGE_HYPHEN"
)

// FormatError reports the first format rule a candidate violated. Rules are
// checked in order: length bounds, character set, edge hyphens.
type FormatError struct {
	Reason FormatReason
}

// Error implements the error interface with a user-displayable message.
func (e *FormatError) Error() string {
	switch e.Reason {
	case TooShort:
		return "使用者名稱至少需要 3 個字元"
	case TooLong:
		return "使用者名稱不可超過 20 個字元"
	case InvalidCharacters:
		return "使用者名稱只能包含小寫英文字母、數字與連字號"
	case EdgeHyphen:
		return "使用者名稱不可以連字號開頭或結尾"
	default:
		return "使用者名稱格式錯誤"
	}
}

// defaultReserved is the compiled-in reserved-word list: operational and
// navigational labels that must never become a public subdomain.
var defaultReserved = []string{
	"www", "api", "app", "admin", "root", "auth", "login", "logout",
	"signup", "register", "dashboard", "preview", "portfolio", "profile",
	"settings", "static", "assets", "cdn", "mail", "email", "blog",
	"docs", "help", "support", "status", "about", "pricing", "terms",
	"privacy", "contact", "ftp", "smtp", "ns1", "ns2",
}

// Policy evaluates username rules against a reserved-word set. The zero
// value is not usable; construct it with NewPolicy.
type Policy struct {
	reserved map[string]struct{}
}

// NewPolicy builds a Policy from the given reserved words. The compiled-in
// defaults are always included; extra entries extend the set.
func NewPolicy(extraReserved []string) *Policy {
	reserved := make(map[string]struct{}, len(defaultReserved)+len(extraReserved))
	for _, word := range defaultReserved {
		reserved[word] = struct{}{}
	}
	for _, word := range extraReserved {
		reserved[Normalize(word)] = struct{}{}
	}

	return &Policy{reserved: reserved}
}

// Normalize lowercases and trims a raw candidate. It is total and
// idempotent; it never rejects input and is always applied before any
// other policy check or storage comparison.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateFormat checks a normalized candidate against the format rules and
// returns a *FormatError naming the first violated rule, or nil.
func ValidateFormat(candidate string) error {
	if len(candidate) < MinLength {
		return &FormatError{Reason: TooShort}
	}
	if len(candidate) > MaxLength {
		return &FormatError{Reason: TooLong}
	}
	for _, r := range candidate {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return &FormatError{Reason: InvalidCharacters}
		}
	}
	if candidate[0] == '-' || candidate[len(candidate)-1] == '-' {
		return &FormatError{Reason: EdgeHyphen}
	}

	return nil
}

// IsReserved reports whether the candidate is a member of the reserved set.
func (p *Policy) IsReserved(candidate string) bool {
	_, ok := p.reserved[candidate]

	return ok
}

// DefaultBase derives the starting candidate for auto-generated usernames
// from the local part of a contact address: non-alphanumerics stripped,
// lowercased, truncated so numeric suffixes still fit. Addresses that strip
// down to fewer than MinLength characters fall back to a generic base.
func DefaultBase(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	var b strings.Builder
	b.Grow(len(local))
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	base := b.String()
	if len(base) > defaultBaseMaxLength {
		base = base[:defaultBaseMaxLength]
	}
	if len(base) < MinLength {
		return fallbackBase
	}

	return base
}
