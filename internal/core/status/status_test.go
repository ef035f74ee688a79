package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)

	assert.Len(t, r.Descriptors(), 7)

	for _, want := range Defaults() {
		d, ok := r.ByKey(want.Key)
		require.True(t, ok, "missing default key %q", want.Key)
		assert.Equal(t, want.Symbol, d.Symbol)
		assert.True(t, d.IsDefault)
	}
}

func TestRegistry_BySymbol(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)

	t.Run("space is todo", func(t *testing.T) {
		d, ok := r.BySymbol(" ")
		require.True(t, ok)
		assert.Equal(t, KeyTodo, d.Key)
	})

	t.Run("uppercase X is done", func(t *testing.T) {
		d, ok := r.BySymbol("X")
		require.True(t, ok)
		assert.Equal(t, KeyDone, d.Key)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, ok := r.BySymbol("z")
		assert.False(t, ok)
	})
}

func TestNewRegistry_Custom(t *testing.T) {
	t.Run("valid custom entries", func(t *testing.T) {
		r, err := NewRegistry([]Descriptor{
			{Key: "waiting", Symbol: "w", Name: "Waiting"},
			{Key: "delegated", Symbol: "d", Name: "Delegated"},
		})
		require.NoError(t, err)

		d, ok := r.BySymbol("w")
		require.True(t, ok)
		assert.Equal(t, Key("waiting"), d.Key)
		assert.False(t, d.IsDefault)
	})

	t.Run("too many customs", func(t *testing.T) {
		_, err := NewRegistry([]Descriptor{
			{Key: "a", Symbol: "a"},
			{Key: "b", Symbol: "b"},
			{Key: "c", Symbol: "c"},
			{Key: "d", Symbol: "d"},
		})
		assert.ErrorIs(t, err, ErrTooManyCustom)
	})

	t.Run("duplicate custom symbol", func(t *testing.T) {
		_, err := NewRegistry([]Descriptor{
			{Key: "a", Symbol: "a"},
			{Key: "other", Symbol: "a"},
		})
		assert.ErrorIs(t, err, ErrDuplicateSymbol)
	})

	t.Run("custom reusing reserved symbol", func(t *testing.T) {
		_, err := NewRegistry([]Descriptor{
			{Key: "mydone", Symbol: "x"},
		})
		assert.Error(t, err)
	})
}

func TestRegistry_Colors(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)

	bg, text, ok := r.Colors(KeyDone)
	require.True(t, ok)
	assert.NotEmpty(t, bg)
	assert.NotEmpty(t, text)

	_, _, ok = r.Colors("nope")
	assert.False(t, ok)
}

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		isCustom bool
		wantErr  bool
	}{
		{name: "custom letter", symbol: "w", isCustom: true, wantErr: false},
		{name: "custom digit", symbol: "5", isCustom: true, wantErr: false},
		{name: "custom uppercase", symbol: "W", isCustom: true, wantErr: false},
		{name: "empty", symbol: "", isCustom: true, wantErr: true},
		{name: "multi char", symbol: "ab", isCustom: true, wantErr: true},
		{name: "custom reserved space", symbol: " ", isCustom: true, wantErr: true},
		{name: "custom reserved x", symbol: "x", isCustom: true, wantErr: true},
		{name: "custom reserved dash", symbol: "-", isCustom: true, wantErr: true},
		{name: "excluded dollar", symbol: "$", isCustom: true, wantErr: true},
		{name: "excluded hash", symbol: "#", isCustom: true, wantErr: true},
		{name: "excluded pipe", symbol: "|", isCustom: true, wantErr: true},
		{name: "excluded underscore", symbol: "_", isCustom: true, wantErr: true},
		{name: "non ascii", symbol: "é", isCustom: true, wantErr: true},
		{name: "emoji", symbol: "✅", isCustom: true, wantErr: true},
		{name: "default space", symbol: " ", isCustom: false, wantErr: false},
		{name: "default slash", symbol: "/", isCustom: false, wantErr: false},
		{name: "default question", symbol: "?", isCustom: false, wantErr: false},
		{name: "non custom letter", symbol: "z", isCustom: false, wantErr: false},
		{name: "non custom excluded", symbol: "$", isCustom: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol(tt.symbol, tt.isCustom)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
