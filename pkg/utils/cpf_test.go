package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPFDigits(t *testing.T) {
	assert.Equal(t, "52998224725", CPFDigits("529.982.247-25"))
	assert.Equal(t, "52998224725", CPFDigits("52998224725"))
	assert.Equal(t, "123", CPFDigits(" 1-2.3 "))
	assert.Equal(t, "", CPFDigits("abc"))
}

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", MaskCPF("52998224725"))
	// Anything but 11 digits passes through untouched.
	assert.Equal(t, "1234", MaskCPF("1234"))
}

func TestNormalizeCPF(t *testing.T) {
	for _, raw := range []string{"52998224725", "529.982.247-25", "529 982 247 25"} {
		masked, digits, err := NormalizeCPF(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, "529.982.247-25", masked)
		assert.Equal(t, "52998224725", digits)
	}

	for _, raw := range []string{"", "1234", "5299822472", "529982247251"} {
		_, _, err := NormalizeCPF(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}
