package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchDefaultsToJapanese(t *testing.T) {
	assert.Equal(t, language.Japanese, Match("").Tag())
	assert.Equal(t, language.Japanese, Match(";;;").Tag())
	assert.Equal(t, language.Japanese, Match("fr-FR,fr;q=0.9").Tag())
}

func TestMatchEnglish(t *testing.T) {
	labels := Match("en-US,en;q=0.9,ja;q=0.8")
	assert.Equal(t, language.English, labels.Tag())
	assert.Equal(t, "Aug", labels.Month(8))
	assert.Equal(t, "Sun", labels.Weekday(0))
}

func TestJapaneseLabels(t *testing.T) {
	labels := Match("ja-JP")
	assert.Equal(t, "1月", labels.Month(1))
	assert.Equal(t, "12月", labels.Month(12))
	assert.Equal(t, "日", labels.Weekday(0))
	assert.Equal(t, "土", labels.Weekday(6))
}

func TestOutOfRangeLabelsAreEmpty(t *testing.T) {
	labels := Match("ja")
	assert.Empty(t, labels.Month(0))
	assert.Empty(t, labels.Month(13))
	assert.Empty(t, labels.Weekday(-1))
	assert.Empty(t, labels.Weekday(7))
}
