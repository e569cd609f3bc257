// utils/response.go
package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a structured error response and aborts the
// request.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns n random alphanumeric characters, used to
// suffix generated record ids.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomAlphabet))))
		if err != nil {
			panic("failed to read random source")
		}
		b[i] = randomAlphabet[idx.Int64()]
	}
	return string(b)
}
