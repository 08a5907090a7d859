package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
greeting:
  plain: "hello"
  one: "hello {0}"
  many: "{0} took {1}: {2}"
  detail: "payload {0}"
`), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, "hello", GetMessage("greeting.plain"))
	assert.Equal(t, "hello world", GetMessage("greeting.one", "world"))
	assert.Equal(t, "probe took 1.5s: boom", GetMessage("greeting.many", "probe", 1500*time.Millisecond, errors.New("boom")))
	assert.Equal(t, `payload {"ok":true}`, GetMessage("greeting.detail", map[string]bool{"ok": true}))
	assert.Equal(t, "Message not found: greeting.none", GetMessage("greeting.none"))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
