package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const domainLookupTimeout = 3 * time.Second

// DomainResolver is the part of *net.Resolver used for mail checks.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// EmailDomain returns the lower-cased part after the last "@", or "" when
// there is none.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

// DomainAcceptsMail is true when the domain has an MX record or, failing
// that, resolves as a plain host.
func DomainAcceptsMail(ctx context.Context, r DomainResolver, domain string) bool {
	if domain == "" {
		return false
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := r.LookupHost(ctx, domain)
	return err == nil && len(addrs) > 0
}

// IsEmailDomainValid checks the address against the system resolver. A slow
// resolver counts as a rejection.
func IsEmailDomainValid(email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), domainLookupTimeout)
	defer cancel()

	return DomainAcceptsMail(ctx, net.DefaultResolver, domain)
}
