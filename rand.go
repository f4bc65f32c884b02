package urlify

import "math/rand"

// randomAlphabet omits the digit 0, which reads like the letter O in a
// generated suffix.
const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ123456789"

// Random returns n characters drawn uniformly from a 61-character
// alphabet (a-z, A-Z, 1-9). Not cryptographically secure; intended for
// distinguishing suffixes, not secrets.
func Random(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = randomAlphabet[rand.Intn(len(randomAlphabet))]
	}
	return string(b)
}
