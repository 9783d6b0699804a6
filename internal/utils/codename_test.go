package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var codenamePattern = regexp.MustCompile(`^(The|Project|Operation) (Nightingale|Kraken|Phoenix|Shadow|Dragon|Falcon)$`)

func TestGenerateCodename(t *testing.T) {
	for i := 0; i < 200; i++ {
		codename := GenerateCodename()
		require.Regexp(t, codenamePattern, codename)
	}
}

func TestGenerateConfirmationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{6}$`)
	for i := 0; i < 200; i++ {
		code := GenerateConfirmationCode()
		require.Regexp(t, pattern, code)
	}
}

func TestGenerateMissionSuccessProbability(t *testing.T) {
	for i := 0; i < 200; i++ {
		probability := GenerateMissionSuccessProbability()
		require.GreaterOrEqual(t, probability, 60)
		require.LessOrEqual(t, probability, 100)
	}
}
