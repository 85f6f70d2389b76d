package record

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aki/remocode/internal/core/codegen"
	"github.com/aki/remocode/internal/core/logger"
	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSnapshot = `records:
  - id: r1
    kind: removal
    code: A000041
    contractNumber: A00000007
    clinic: Vet Central
    status: collected
  - id: r2
    kind: removal
    code: A000040
  - id: r3
    kind: preventive
    code: PRE_00000012
    contractNumber: A00000008
  - id: r4
    clinic: Pet Care
  - id: r5
    code: "123"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReader_LoadYAML(t *testing.T) {
	path := writeFile(t, "records.yaml", yamlSnapshot)

	snap, err := NewReader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, snap.Missing)
	assert.Equal(t, path, snap.Path)
	require.Len(t, snap.Records, 5)

	assert.Equal(t, []string{"A000041", "A000040", "PRE_00000012", "", "123"}, snap.Codes())
	assert.Equal(t, []string{"A00000007", "", "A00000008", "", ""}, snap.ContractNumbers())
	assert.Equal(t, "Vet Central", snap.Records[0].Clinic)
}

func TestReader_LoadJSON(t *testing.T) {
	path := writeFile(t, "records.json", `{"records":[{"id":"x","code":"B000001"},{"id":"y","contractNumber":"C00000002"}]}`)

	snap, err := NewReader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"B000001", ""}, snap.CodesFor(codegen.KindRemoval))
	assert.Equal(t, []string{"", "C00000002"}, snap.CodesFor(codegen.KindContract))
}

func TestReader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	snap, err := NewReader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, snap.Missing)
	assert.Empty(t, snap.Records)

	// The reader must not create the file while locking
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReader_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path := filepath.Join(dir, "records.yaml")

	snap, err := NewReader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, snap.Missing)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestReader_LogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithDebug())
	ctx := logger.WithContext(context.Background(), log)

	_, err := NewReader().Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "snapshot not found")
	assert.Contains(t, buf.String(), "absent.yaml")
}

func TestReader_NonPositiveTimeoutTriesOnce(t *testing.T) {
	path := writeFile(t, "records.yaml", yamlSnapshot)

	for _, d := range []time.Duration{0, -time.Second} {
		snap, err := NewReader(WithLockTimeout(d)).Load(context.Background(), path)
		require.NoError(t, err, "timeout %s", d)
		assert.Len(t, snap.Records, 5)
	}

	writer := flock.New(path)
	require.NoError(t, writer.Lock())
	defer func() { _ = writer.Unlock() }()

	_, err := NewReader(WithLockTimeout(0)).Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestReader_EmptyFile(t *testing.T) {
	path := writeFile(t, "records.yaml", "\n")

	snap, err := NewReader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, snap.Records)
}

func TestReader_InvalidContent(t *testing.T) {
	path := writeFile(t, "records.json", `{"records": [`)

	_, err := NewReader().Load(context.Background(), path)
	assert.Error(t, err)
}

func TestReader_LockTimeout(t *testing.T) {
	path := writeFile(t, "records.yaml", yamlSnapshot)

	writer := flock.New(path)
	require.NoError(t, writer.Lock())
	defer func() { _ = writer.Unlock() }()

	start := time.Now()
	_, err := NewReader(WithLockTimeout(200*time.Millisecond)).Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestReader_SharedLockAllowsReaders(t *testing.T) {
	path := writeFile(t, "records.yaml", yamlSnapshot)

	other := flock.New(path)
	require.NoError(t, other.RLock())
	defer func() { _ = other.Unlock() }()

	snap, err := NewReader(WithLockTimeout(time.Second)).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 5)
}

func TestDecode_UnsupportedEncoding(t *testing.T) {
	_, err := Decode([]byte("records: []"), Encoding("toml"))
	assert.Error(t, err)
}
