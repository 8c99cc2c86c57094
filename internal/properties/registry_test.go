package properties

import (
	"errors"
	"fmt"
	"maps"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/ociprops/enums"
)

type nativeCall struct {
	Name  Name
	Value any
}

type fakeClient struct {
	version      Version
	versionCalls int
	nativeErr    error
	calls        []nativeCall
}

func (c *fakeClient) ClientVersion() Version {
	c.versionCalls++
	return c.version
}

func (c *fakeClient) SetNativeProperty(name Name, value any) error {
	c.calls = append(c.calls, nativeCall{Name: name, Value: value})
	return c.nativeErr
}

func newFakeClient(version string) *fakeClient {
	return &fakeClient{version: MustParseVersion(version)}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults on a current client", func(t *testing.T) {
		client := newFakeClient("19.3")
		r := New(client)

		want := map[Name]any{
			LengthSemantics:     enums.LengthSemanticsByte,
			BindStringAsNChar:   false,
			FloatConversionType: enums.FloatConversionTypeGo,
			StatementCacheSize:  0,
		}
		if diff := cmp.Diff(want, maps.Collect(r.All())); diff != "" {
			t.Errorf("All() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, client.versionCalls)
		assert.Empty(t, client.calls, "defaults must not reach the native library")
		assert.Equal(t, MustParseVersion("19.3"), r.ClientVersion())
	})

	t.Run("statement cache disabled below 9.2", func(t *testing.T) {
		r := New(newFakeClient("9.0.1"))

		v, err := r.Get(StatementCacheSize)
		require.NoError(t, err)
		assert.Nil(t, v)

		size, ok := r.StatementCacheSize()
		assert.False(t, ok)
		assert.Zero(t, size)
	})

	t.Run("statement cache enabled at exactly 9.2", func(t *testing.T) {
		r := New(newFakeClient("9.2.0.1.0"))

		size, ok := r.StatementCacheSize()
		assert.True(t, ok)
		assert.Zero(t, size)
	})
}

func TestRegistryUnknownProperty(t *testing.T) {
	t.Parallel()
	client := newFakeClient("19")
	r := New(client)

	for _, name := range []Name{"length_semantic", "", "statement_cache", "invalid_property_name"} {
		t.Run(string(name), func(t *testing.T) {
			_, err := r.Get(name)
			var unknown *ErrUnknownProperty
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, name, unknown.Name)

			err = r.Set(name, true)
			require.ErrorAs(t, err, &unknown)

			_, err = r.Describe(name)
			require.ErrorAs(t, err, &unknown)
		})
	}
	assert.Empty(t, client.calls)
}

func TestRegistryNamesAreCaseInsensitive(t *testing.T) {
	t.Parallel()
	r := New(newFakeClient("19"))

	require.NoError(t, r.Set("BIND_STRING_AS_NCHAR", true))
	v, err := r.Get(" Bind_String_As_NChar ")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestRegistryBindStringAsNChar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"true", true, true},
		{"non-empty string", "yes", true},
		{"integer", 1, true},
		{"struct", struct{}{}, true},
		{"string false", "false", true},
		{"empty string", "", true},
		{"zero", 0, true},
		{"enum", enums.LengthSemanticsByte, true},
		{"false", false, false},
		{"nil", nil, false},
		{"nil pointer", (*int)(nil), false},
		{"nil slice", []byte(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(newFakeClient("19"))
			require.NoError(t, r.Set(BindStringAsNChar, !tt.want))
			require.NoError(t, r.Set(BindStringAsNChar, tt.input))

			got, err := r.Get(BindStringAsNChar)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, r.BindStringAsNChar())
		})
	}
}

func TestRegistryLengthSemantics(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		r := New(newFakeClient("19"))

		require.NoError(t, r.Set(LengthSemantics, enums.LengthSemanticsChar))
		got, err := r.Get(LengthSemantics)
		require.NoError(t, err)
		assert.Equal(t, enums.LengthSemanticsChar, got)

		require.NoError(t, r.Set(LengthSemantics, "byte"))
		assert.Equal(t, enums.LengthSemanticsByte, r.LengthSemantics())
	})

	t.Run("invalid token leaves value intact", func(t *testing.T) {
		r := New(newFakeClient("19"))
		require.NoError(t, r.Set(LengthSemantics, "CHAR"))

		for _, v := range []any{"invalid_token", 1, nil, enums.LengthSemantics(9), enums.FloatConversionTypeOracle} {
			err := r.Set(LengthSemantics, v)
			var invalid *ErrInvalidValue
			require.ErrorAs(t, err, &invalid, "value %v", v)
			assert.Equal(t, LengthSemantics, invalid.Name)
			assert.Equal(t, v, invalid.Value)
			assert.Equal(t, enums.LengthSemanticsChar, r.LengthSemantics())
		}
	})
}

func TestRegistryStatementCacheSize(t *testing.T) {
	t.Parallel()

	t.Run("integer coercion", func(t *testing.T) {
		tests := []struct {
			input any
			want  int
		}{
			{"5", 5},
			{5, 5},
			{int64(20), 20},
			{uint8(3), 3},
			{7.9, 7},
			{"5.5", 5},
			{0, 0},
			{nil, 0},
		}
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%T(%v)", tt.input, tt.input), func(t *testing.T) {
				r := New(newFakeClient("11.2.0.4.0"))
				require.NoError(t, r.Set(StatementCacheSize, 1))
				require.NoError(t, r.Set(StatementCacheSize, tt.input))

				got, err := r.Get(StatementCacheSize)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("rejected values leave value intact", func(t *testing.T) {
		r := New(newFakeClient("11.2.0.4.0"))
		require.NoError(t, r.Set(StatementCacheSize, 10))

		for _, v := range []any{-1, "-1", "ten", true, []int{1}} {
			err := r.Set(StatementCacheSize, v)
			var invalid *ErrInvalidValue
			require.ErrorAs(t, err, &invalid, "value %v", v)
			assert.Equal(t, StatementCacheSize, invalid.Name)

			size, ok := r.StatementCacheSize()
			assert.True(t, ok)
			assert.Equal(t, 10, size)
		}

		err := r.Set(StatementCacheSize, -1)
		assert.EqualError(t, err, "invalid property value -1 for statement_cache_size: value -1 is less than minimum 0")
	})

	t.Run("old client rejects every write", func(t *testing.T) {
		client := newFakeClient("9.0.1.4.0")
		r := New(client)

		for _, v := range []any{0, 20, "5", -1, "ten", nil} {
			err := r.Set(StatementCacheSize, v)
			var unsupported *ErrUnsupportedFeature
			require.ErrorAs(t, err, &unsupported, "value %v", v)
			assert.Equal(t, StatementCacheSize, unsupported.Name)
			assert.Equal(t, MustParseVersion("9.0.1.4.0"), unsupported.ClientVersion)
			assert.Equal(t, StatementCacheMinVersion, unsupported.Required)

			got, err := r.Get(StatementCacheSize)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
		assert.EqualError(t, r.Set(StatementCacheSize, 1),
			"statement_cache_size is disabled on Oracle client 9.0.1.4.0, requires 9.2.0.0.0 or later")
		assert.Equal(t, 1, client.versionCalls, "the client version is read only once")
	})
}

func TestRegistryFloatConversionType(t *testing.T) {
	t.Parallel()

	t.Run("coerced value is forwarded before storing", func(t *testing.T) {
		client := newFakeClient("19")
		r := New(client)

		require.NoError(t, r.Set(FloatConversionType, "oracle"))
		assert.Equal(t, []nativeCall{{Name: FloatConversionType, Value: enums.FloatConversionTypeOracle}}, client.calls)
		got, ok := r.FloatConversionType()
		assert.True(t, ok)
		assert.Equal(t, enums.FloatConversionTypeOracle, got)
	})

	t.Run("unrecognized values are left to the native library", func(t *testing.T) {
		client := newFakeClient("19")
		r := New(client)

		require.NoError(t, r.Set(FloatConversionType, "ruby"))
		assert.Equal(t, []nativeCall{{Name: FloatConversionType, Value: "ruby"}}, client.calls)

		got, err := r.Get(FloatConversionType)
		require.NoError(t, err)
		assert.Equal(t, "ruby", got)

		typed, ok := r.FloatConversionType()
		assert.False(t, ok)
		assert.Equal(t, enums.FloatConversionTypeGo, typed)

		info, err := r.Describe(FloatConversionType)
		require.NoError(t, err)
		assert.Equal(t, enums.FloatConversionTypeGo, info.Default)
		assert.True(t, info.Supported)

		stored := maps.Collect(r.All())
		assert.Equal(t, "ruby", stored[FloatConversionType])

		// A recognized token restores the typed view.
		require.NoError(t, r.Set(FloatConversionType, "ORACLE"))
		typed, ok = r.FloatConversionType()
		assert.True(t, ok)
		assert.Equal(t, enums.FloatConversionTypeOracle, typed)
	})

	t.Run("native failure leaves value unchanged", func(t *testing.T) {
		errNative := errors.New("native library rejected the value")
		client := newFakeClient("19")
		r := New(client)
		require.NoError(t, r.Set(FloatConversionType, enums.FloatConversionTypeOracle))

		client.nativeErr = errNative
		err := r.Set(FloatConversionType, enums.FloatConversionTypeGo)
		require.ErrorIs(t, err, errNative)
		assert.EqualError(t, err, "float_conversion_type: native library rejected the value")

		got, err := r.Get(FloatConversionType)
		require.NoError(t, err)
		assert.Equal(t, enums.FloatConversionTypeOracle, got)
		assert.Len(t, client.calls, 2)
	})
}

func TestRegistryOnlyNativePropertiesReachTheClient(t *testing.T) {
	t.Parallel()
	client := newFakeClient("19")
	r := New(client)

	require.NoError(t, r.Set(LengthSemantics, "CHAR"))
	require.NoError(t, r.Set(BindStringAsNChar, true))
	require.NoError(t, r.Set(StatementCacheSize, 20))
	assert.Empty(t, client.calls)
}

func TestRegistryDescribe(t *testing.T) {
	t.Parallel()
	r := New(newFakeClient("8.1.7"))

	info, err := r.Describe("STATEMENT_CACHE_SIZE")
	require.NoError(t, err)
	assert.Equal(t, StatementCacheSize, info.Name)
	assert.False(t, info.Supported)
	assert.False(t, info.Native)
	assert.Equal(t, 0, info.Default)
	require.NotNil(t, info.MinVersion)
	assert.Equal(t, StatementCacheMinVersion, *info.MinVersion)

	info, err = r.Describe(FloatConversionType)
	require.NoError(t, err)
	assert.True(t, info.Native)
	assert.True(t, info.Supported)
	assert.Nil(t, info.MinVersion)
	assert.NotEmpty(t, info.Description)
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()
	r := New(newFakeClient("19"))
	assert.Equal(t, []Name{LengthSemantics, BindStringAsNChar, FloatConversionType, StatementCacheSize}, r.Names())

	var seen []Name
	for name := range r.All() {
		seen = append(seen, name)
		if name == BindStringAsNChar {
			break
		}
	}
	assert.Equal(t, []Name{LengthSemantics, BindStringAsNChar}, seen)
}

func TestRegistryConcurrentWriters(t *testing.T) {
	t.Parallel()
	r := New(newFakeClient("19"))

	var wg conc.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			// Half of the writes are invalid and must never be observed.
			_ = r.Set(StatementCacheSize, i-25)
			_ = r.Set(LengthSemantics, []string{"BYTE", "CHAR", "WORD"}[i%3])
		})
		wg.Go(func() {
			v, err := r.Get(StatementCacheSize)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, v.(int), 0)

			ls := r.LengthSemantics()
			assert.True(t, ls.IsALengthSemantics())
		})
	}
	wg.Wait()

	size, ok := r.StatementCacheSize()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, size, 0)
}
