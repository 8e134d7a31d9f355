package suppress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/corpus/v2/suppress"
	"github.com/tawesoft/corpus/v2/text/sentbreak"
)

func TestEnglishListFeedsSentbreak(t *testing.T) {
	words, err := suppress.List("english")
	assert.NoError(t, err)
	assert.Contains(t, words, "Mr")

	sup, err := sentbreak.NewSuppressions(words)
	assert.NoError(t, err)
	assert.True(t, sup.Suppress([]rune("Mr")))
	assert.False(t, sup.Suppress([]rune("Hello")))
}

func TestUnknownLanguage(t *testing.T) {
	_, err := suppress.List("klingon")
	assert.Error(t, err)
}
