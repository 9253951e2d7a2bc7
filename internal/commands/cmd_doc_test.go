package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/datepicker/pkg/tuitest"
)

func TestDocCmd(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		out, err := runCmd(t, NewDocCmd(), "doc", "--raw", "formats")
		require.NoError(t, err)
		assert.Contains(t, out, "# Typed text")
		assert.Contains(t, out, "`15062567`")
	})

	t.Run("rendered", func(t *testing.T) {
		out, err := runCmd(t, NewDocCmd(), "doc", "keys")
		require.NoError(t, err)

		plain := tuitest.StripANSI(out)
		assert.Contains(t, plain, "Picker keys")
		assert.NotContains(t, plain, "# Picker keys", "headings are styled, not printed as source")
	})

	t.Run("every topic has a guide", func(t *testing.T) {
		for _, topic := range docTopics {
			_, err := docsFS.ReadFile(topic.file)
			assert.NoError(t, err, topic.name)
		}
	})
}
