package validators

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dnsTimeout = 3 * time.Second

var validate = validator.New()

// IsEmailFormatValid checks only the syntax of the address.
func IsEmailFormatValid(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}

// IsEmailDomainValid accepts addresses whose domain has an MX record or at
// least resolves to an IP.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(email)
	if !IsEmailFormatValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
