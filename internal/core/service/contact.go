package service

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	DefaultContactHost    = "wa.me"
	DefaultContactMessage = "Halo, saya ingin bertanya tentang produk modest fashion Anda."
	DefaultContactNotice  = "Nomor WhatsApp admin tidak tersedia saat ini."
)

type ContactConfig struct {
	ServiceHost       string
	Message           string
	UnavailableNotice string
}

func (c *ContactConfig) normalize() {
	if c.ServiceHost == "" {
		c.ServiceHost = DefaultContactHost
	}
	if c.Message == "" {
		c.Message = DefaultContactMessage
	}
	if c.UnavailableNotice == "" {
		c.UnavailableNotice = DefaultContactNotice
	}
}

// DialableNumber strips whitespace, '+' and '-' from phone.
func DialableNumber(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '+' || r == '-' {
			return -1
		}
		return r
	}, phone)
}

// DeriveContact builds the contact channel from the admin users in store
// order. The first admin wins.
func DeriveContact(admins []domain.User, cfg ContactConfig) domain.ContactChannel {
	cfg.normalize()

	unavailable := domain.ContactChannel{Notice: cfg.UnavailableNotice}
	if len(admins) == 0 {
		return unavailable
	}

	number := DialableNumber(admins[0].PhoneNumber)
	if number == "" {
		return unavailable
	}

	return domain.ContactChannel{
		Available: true,
		Number:    number,
		Link:      ContactLink(cfg.ServiceHost, number, cfg.Message),
	}
}

// ContactLink makes https://<host>/<number>?text=<message>.
func ContactLink(host, number, message string) string {
	return "https://" + host + "/" + number + "?text=" + escapeComponent(message)
}

// componentUnescaper reverts the query escaping of characters
// that stay literal in a URI component.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent escapes s like encodeURIComponent: spaces as %20,
// and the characters !'()* left as is.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
