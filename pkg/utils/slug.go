package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// slugPattern: lowercase letters, numbers, and single hyphens between groups.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// reservedSlugs cannot be claimed by vendors because they collide with
// routes or infrastructure names.
var reservedSlugs = map[string]bool{
	"admin": true, "api": true, "auth": true, "vendor": true, "vendors": true,
	"dashboard": true, "settings": true, "profile": true, "booking": true,
	"bookings": true, "order": true, "orders": true, "menu": true,
	"activities": true, "category": true, "categories": true, "about": true,
	"contact": true, "help": true, "support": true, "terms": true,
	"privacy": true, "login": true, "logout": true, "signup": true,
	"register": true, "reset": true, "verify": true, "confirm": true,
	"new": true, "edit": true, "delete": true, "create": true, "update": true,
	"search": true, "home": true, "index": true, "www": true, "mail": true,
	"email": true, "blog": true, "news": true, "app": true, "web": true,
	"static": true, "assets": true, "images": true, "public": true,
	"private": true, "health": true,
}

// GenerateSlug derives a URL-friendly slug from a display name.
func GenerateSlug(input string) string {
	return slug.Make(input)
}

// ValidateSlug checks a vendor-chosen slug against format, length, and the
// reserved list. Returns nil when the slug is acceptable.
func ValidateSlug(s string) error {
	if s == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	if len(s) < 3 {
		return fmt.Errorf("slug must be at least 3 characters long")
	}
	if len(s) > 100 {
		return fmt.Errorf("slug cannot be longer than 100 characters")
	}
	if !slugPattern.MatchString(s) {
		return fmt.Errorf("slug can only contain lowercase letters, numbers, and hyphens")
	}
	if reservedSlugs[strings.ToLower(s)] {
		return fmt.Errorf("slug %q is reserved", s)
	}
	return nil
}

// IsUUID reports whether the string looks like a UUID, used to disambiguate
// /vendors/{idOrSlug} lookups.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
				return false
			}
		}
	}
	return true
}
