package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemesMintValidateParse(t *testing.T) {
	for _, scheme := range Schemes {
		t.Run(scheme, func(t *testing.T) {
			gen, err := New(scheme, "tst", DefaultNanoIDSize, DefaultNanoIDAlphabet)
			require.NoError(t, err)

			id, err := gen.Generate()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, "tst_"), "id %q", id)

			valid, reason := gen.Validate(id)
			assert.True(t, valid, "id %q rejected: %s", id, reason)

			res, err := gen.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, "tst", res.Prefix)
			assert.Equal(t, strings.TrimPrefix(id, "tst_"), res.Body)
			assert.Equal(t, int32(len(res.Body)), res.BodyLength)
		})
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := NewCrockfordGenerator("tst")
	ids, err := gen.GenerateBatch(100)
	require.NoError(t, err)
	require.Len(t, ids, 100)

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestValidateRejectsForeignPrefix(t *testing.T) {
	gen := NewCuid2Generator("usr")
	id, err := gen.Generate()
	require.NoError(t, err)

	valid, reason := gen.Validate("cus" + strings.TrimPrefix(id, "usr"))
	assert.False(t, valid)
	assert.Contains(t, reason, `"usr"`)

	valid, reason = gen.Validate("usr" + strings.TrimPrefix(id, "usr_"))
	assert.False(t, valid)
	assert.Contains(t, reason, "'_'")
}

func TestCrockfordParseFields(t *testing.T) {
	gen := NewCrockfordGenerator("tst")

	res, err := gen.Parse("tst_Z0")
	require.NoError(t, err)
	assert.Equal(t, "992", res.DecimalValue)
	assert.Equal(t, "tst_Z0", res.Canonical)

	// Aliases normalize in the canonical rendering.
	res, err = gen.Parse("tst_zo")
	require.NoError(t, err)
	assert.Equal(t, "tst_Z0", res.Canonical)

	_, err = gen.Parse("tst_" + strings.Repeat("Z", 27))
	assert.Error(t, err)

	valid, _ := gen.Validate("tst_" + strings.Repeat("Z", 27))
	assert.False(t, valid)
}

func TestULIDParseTimestamp(t *testing.T) {
	gen := NewULIDGenerator("ord")
	id, err := gen.Generate()
	require.NoError(t, err)

	res, err := gen.Parse(id)
	require.NoError(t, err)
	now := time.Now().UnixMilli()
	assert.InDelta(t, now, res.TimestampMs, 5000)
	assert.NotEmpty(t, res.RandomPayload)
}

func TestNanoIDConfigValidation(t *testing.T) {
	_, err := NewNanoIDGenerator("dev", 0, DefaultNanoIDAlphabet)
	assert.Error(t, err)

	_, err = NewNanoIDGenerator("dev", 21, "a")
	assert.Error(t, err)
}

func TestUnknownScheme(t *testing.T) {
	_, err := New("snowflake", "tst", DefaultNanoIDSize, DefaultNanoIDAlphabet)
	assert.Error(t, err)
}
