package utils

import (
	"math/rand"
)

var (
	codenamePrefixes = []string{"The", "Project", "Operation"}
	codenameNouns    = []string{"Nightingale", "Kraken", "Phoenix", "Shadow", "Dragon", "Falcon"}
)

const confirmationCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCodename generates a random codename in the format "<Prefix> <Noun>",
// e.g. "Operation Kraken". Uniqueness is not guaranteed here; the database
// enforces it at write time.
func GenerateCodename() string {
	prefix := codenamePrefixes[rand.Intn(len(codenamePrefixes))]
	noun := codenameNouns[rand.Intn(len(codenameNouns))]
	return prefix + " " + noun
}

// GenerateConfirmationCode generates a random 6-character uppercase
// alphanumeric code. The code is advisory only and never persisted.
func GenerateConfirmationCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = confirmationCodeAlphabet[rand.Intn(len(confirmationCodeAlphabet))]
	}
	return string(code)
}

// GenerateMissionSuccessProbability picks a uniformly random success
// probability between 60 and 100 percent inclusive.
func GenerateMissionSuccessProbability() int {
	return 60 + rand.Intn(41)
}
