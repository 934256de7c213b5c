package pdf

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormRenderer_Render(t *testing.T) {
	r := NewFormRenderer(t.TempDir())

	path, err := r.Render([]OrderLine{
		{MedicineName: "Aspirin", Quantity: 10, Reason: "out of stock"},
		{MedicineName: "Metformin", Quantity: 5, Reason: "supplier delay"},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestFormRenderer_EmptyLines(t *testing.T) {
	r := NewFormRenderer(t.TempDir())
	_, err := r.Render(nil)
	assert.Error(t, err)
}
