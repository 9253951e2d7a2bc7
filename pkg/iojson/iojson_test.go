package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]string{"value": "2024-06-20"}))
	assert.JSONEq(t, `{"value":"2024-06-20"}`, out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, WriteWith(&out, &errOut, func() {}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestMarshalError(t *testing.T) {
	var e Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("bad input", map[string]any{"text": "31/02"})), &e))
	assert.Equal(t, "bad input", e.Message)
	assert.Equal(t, "31/02", e.Data["text"])
}

func TestFileReader(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		fr := FileReader[map[string]string]{stdin: strings.NewReader(`{"due":"2024-06-20"}`)}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"due": "2024-06-20"}, got)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fields.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"start":"09:00"}`), 0o644))

		fr := FileReader[map[string]string]{fileFlagValue: path}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "09:00", got["start"])
	})

	t.Run("bad json", func(t *testing.T) {
		fr := FileReader[map[string]string]{stdin: strings.NewReader(`{`)}
		_, err := fr.Read()
		assert.ErrorContains(t, err, "decode JSON")
	})
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, map[string]string{"value": "09:30"}))
	require.NoError(t, WriteLine(&out, map[string]string{"value": "10:00"}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"value":"09:30"}`, lines[0])
	assert.JSONEq(t, `{"value":"10:00"}`, lines[1])

	assert.Error(t, WriteLine(&out, make(chan int)))
}
