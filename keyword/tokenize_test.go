package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeText(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  []string
	}{
		{text: "", out: []string{}},
		{text: "Hello, โลก!", out: []string{"hello", "โลก"}},
		{text: "Gdańsk", out: []string{"gdansk"}},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, TokenizeText(fix.text))
	}
}

func TestTokenizeTextKeepingMasks(t *testing.T) {
	assert := assert.New(t)

	// mask characters split with the plain tokenizer, survive with the
	// mask-keeping one
	assert.Equal([]string{"oh", "d", "n"}, TokenizeText("oh d**n!"))
	assert.Equal([]string{"oh", "d**n"}, TokenizeTextKeepingMasks("oh d**n!"))
}

func TestTokenizeIdentifier(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		ident string
		out   []string
	}{
		{ident: "", out: []string{}},
		{ident: "some-user.example.com", out: []string{"some", "user", "example", "com"}},
		{ident: "@a-b-c", out: []string{}},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, TokenizeIdentifier(fix.ident))
	}
}
