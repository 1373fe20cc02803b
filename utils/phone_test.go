package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "5511999998888", FormatPhoneNumber("+55 (11) 99999-8888"))
	assert.Equal(t, "5511999998888", FormatPhoneNumber("5511999998888"))
	assert.Equal(t, "", FormatPhoneNumber("abc"))
	assert.Equal(t, "", FormatPhoneNumber(""))
}
