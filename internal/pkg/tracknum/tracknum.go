// Package tracknum mints and validates public shipment identifiers.
package tracknum

import (
	"fmt"
	"math/rand"
	"regexp"
)

// Prefix opens every tracking number.
const Prefix = "LBC"

const (
	digitsMin = 10_000_000
	digitsMax = 99_999_999
)

var format = regexp.MustCompile(`^LBC\d{8,12}$`)

// Generate returns a fresh tracking number: the LBC prefix followed by
// exactly eight random decimal digits. Uniqueness is not guaranteed here;
// the store rejects collisions at create time and callers may retry.
func Generate() string {
	n := digitsMin + rand.Intn(digitsMax-digitsMin+1)
	return fmt.Sprintf("%s%d", Prefix, n)
}

// Valid reports whether s is an acceptable tracking number. Validation
// admits 8 to 12 digits while generation always emits 8.
func Valid(s string) bool {
	return format.MatchString(s)
}
