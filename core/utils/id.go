package utils

import (
	"crypto/rand"
	"encoding/hex"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short collision-resistant identifier, used for
// things that do not need a full UUID.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateFileName returns a random hex name for an uploaded file, long
// enough that collisions in a shared upload directory are not a concern.
func GenerateFileName(byteLen int) string {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively fatal; nanoid is the fallback.
		name, _ := gonanoid.Generate(idAlphabet, byteLen*2)
		return name
	}
	return hex.EncodeToString(buf)
}
