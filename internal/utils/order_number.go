package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderNumber builds a customer-facing order number like
// PTY-20251020-3FA2C1. Uniqueness is ultimately enforced by the database
// constraint; the random suffix just makes collisions unlikely.
func GenerateOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	rand.Read(buf)
	return fmt.Sprintf("PTY-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}

// RentalDays counts the days of a rental including both the delivery and
// the pickup date. Never less than one.
func RentalDays(deliveryDate, pickupDate time.Time) int {
	days := int(pickupDate.Sub(deliveryDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// SplitSurfaces parses the comma-separated allowed_surfaces column. An
// empty value means the item works on any surface.
func SplitSurfaces(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	surfaces := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			surfaces = append(surfaces, s)
		}
	}
	return surfaces
}

// JoinSurfaces is the inverse of SplitSurfaces.
func JoinSurfaces(surfaces []string) string {
	return strings.Join(surfaces, ",")
}

// SurfaceAllowed reports whether a surface is compatible with an item's
// allowed_surfaces value.
func SurfaceAllowed(csv, surface string) bool {
	if csv == "" {
		return true
	}
	for _, s := range SplitSurfaces(csv) {
		if strings.EqualFold(s, surface) {
			return true
		}
	}
	return false
}
