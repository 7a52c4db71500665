package testutil

import "math/rand"

// RandomString generates a random lowercase string given the pseudo
// random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range str {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}
