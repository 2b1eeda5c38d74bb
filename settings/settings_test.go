package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ancientnlp/glossa/tokenizer"
)

func TestDataDirOverride(t *testing.T) {
	orig := GetDataDir()
	defer SetDataDir(orig)

	assert.NotEmpty(t, orig)

	SetDataDir("/tmp/models")
	assert.Equal(t, "/tmp/models", GetDataDir())
}

func TestLanguageFallbackDefaultsOn(t *testing.T) {
	orig := GetLanguageFallback()
	defer SetLanguageFallback(orig)

	assert.True(t, orig)

	SetLanguageFallback(false)
	assert.False(t, GetLanguageFallback())
}

func TestBPEModelDefault(t *testing.T) {
	orig := GetBPEModel()
	defer SetBPEModel(orig)

	assert.Equal(t, tokenizer.DefaultBPEModel, orig)

	SetBPEModel("gpt-4")
	assert.Equal(t, "gpt-4", GetBPEModel())
}
