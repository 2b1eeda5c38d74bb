package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	lang, err := Get("lat")
	require.NoError(t, err)
	assert.Equal(t, "Latin", lang.Name)
	assert.Equal(t, "lati1261", lang.GlottologID)
	assert.Equal(t, "latin", lang.LegacyName)

	// Case-insensitive lookup.
	lang, err = Get("GRC")
	require.NoError(t, err)
	assert.Equal(t, "Ancient Greek", lang.Name)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("xx")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Contains(t, err.Error(), "xx")
}

func TestIndicGroup(t *testing.T) {
	for _, iso := range Indic {
		assert.True(t, IsRegistered(iso), iso)
		assert.True(t, IsIndic(iso), iso)
	}
	assert.False(t, IsIndic("lat"))
	assert.False(t, IsIndic("grc"))
}

func TestAllSortedAndClosed(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.IsNonDecreasing(t, all)
	for _, iso := range all {
		assert.True(t, IsRegistered(iso))
	}
}
