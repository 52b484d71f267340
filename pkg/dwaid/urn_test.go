package dwaid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURN(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantScheme Scheme
		wantKind   Kind
		wantID     URNID
	}{
		{
			name:       "formal module",
			input:      "urn:rational::1-48beda447cfb0c27-M-00003c20",
			wantScheme: SchemeRational,
			wantKind:   KindFormalModule,
			wantID:     SimpleID(0x3c20),
		},
		{
			name:       "project root",
			input:      "urn:rational::1-48beda447cfb0c27-P-0000500d",
			wantScheme: SchemeRational,
			wantKind:   KindProjectRoot,
			wantID:     SimpleID(0x500d),
		},
		{
			name:       "object",
			input:      "urn:rational::1-48beda447cfb0c27-O-2-00003c20",
			wantScheme: SchemeRational,
			wantKind:   KindObject,
			wantID:     ObjectRefID(2, 0x3c20),
		},
		{
			name:       "folder",
			input:      "urn:rational::1-48beda447cfb0c27-F-00000003",
			wantScheme: SchemeRational,
			wantKind:   KindFolder,
			wantID:     SimpleID(3),
		},
		{
			name:       "telelogic scheme",
			input:      "urn:telelogic::1-48beda447cfb0c27-M-00003c20",
			wantScheme: SchemeTelelogic,
			wantKind:   KindFormalModule,
			wantID:     SimpleID(0x3c20),
		},
		{
			name:       "object with large absolute number",
			input:      "urn:rational::1-48beda447cfb0c27-O-2982-00003e20",
			wantScheme: SchemeRational,
			wantKind:   KindObject,
			wantID:     ObjectRefID(2982, 0x3e20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseURN(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheme, u.Scheme())
			assert.Equal(t, "48beda447cfb0c27", u.DatabaseID().String())
			assert.Equal(t, tt.wantKind, u.Kind())
			assert.Equal(t, tt.wantID, u.ID())
		})
	}
}

func TestParseURN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField URNField
	}{
		{
			name:      "missing urn prefix",
			input:     "rational::1-48beda447cfb0c27-M-00003c20",
			wantField: URNFieldPrefix,
		},
		{
			name:      "unknown scheme",
			input:     "urn:foo::1-48beda447cfb0c27-M-00003c20",
			wantField: URNFieldScheme,
		},
		{
			name:      "uppercase scheme is rejected",
			input:     "urn:RATIONAL::1-48beda447cfb0c27-M-00003c20",
			wantField: URNFieldScheme,
		},
		{
			name:      "missing ::1- separator",
			input:     "urn:rational:1-48beda447cfb0c27-M-00003c20",
			wantField: URNFieldPrefix,
		},
		{
			name:      "short database ID",
			input:     "urn:rational::1-48beda447cfb0c-M-00003c20",
			wantField: URNFieldDatabaseID,
		},
		{
			name:      "non-hex database ID",
			input:     "urn:rational::1-48beda447cfb0czz-M-00003c20",
			wantField: URNFieldDatabaseID,
		},
		{
			name:      "unknown kind letter",
			input:     "urn:rational::1-48beda447cfb0c27-X-00003c20",
			wantField: URNFieldKind,
		},
		{
			name:      "lowercase kind letter",
			input:     "urn:rational::1-48beda447cfb0c27-m-00003c20",
			wantField: URNFieldKind,
		},
		{
			name:      "module key too short",
			input:     "urn:rational::1-48beda447cfb0c27-M-3c20",
			wantField: URNFieldKey,
		},
		{
			name:      "module key with extra segment",
			input:     "urn:rational::1-48beda447cfb0c27-M-00003c20-2",
			wantField: URNFieldKey,
		},
		{
			name:      "object with missing module key",
			input:     "urn:rational::1-48beda447cfb0c27-O-2",
			wantField: URNFieldObjectRef,
		},
		{
			name:      "object with non-decimal number",
			input:     "urn:rational::1-48beda447cfb0c27-O-ba6-00003c20",
			wantField: URNFieldObjectRef,
		},
		{
			name:      "object with negative number",
			input:     "urn:rational::1-48beda447cfb0c27-O--2-00003c20",
			wantField: URNFieldObjectRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURN(tt.input)
			require.Error(t, err)
			var parseErr *URNParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantField, parseErr.Field)
		})
	}
}

func TestURN_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"urn:rational::1-48beda447cfb0c27-M-00003c20",
		"urn:rational::1-48beda447cfb0c27-P-0000500d",
		"urn:rational::1-48beda447cfb0c27-O-2-00003c20",
		"urn:rational::1-48beda447cfb0c27-F-00000003",
		"urn:telelogic::1-48beda447cfb0c27-O-2982-00003e20",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			u, err := ParseURN(s)
			require.NoError(t, err)
			assert.Equal(t, s, u.String())

			again, err := ParseURN(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, again)
		})
	}
}

func TestURN_SchemeRoundTrip(t *testing.T) {
	// rational and telelogic are distinct identifiers, never normalized.
	rational := MustParseURN("urn:rational::1-48beda447cfb0c27-M-00003c20")
	telelogic := MustParseURN("urn:telelogic::1-48beda447cfb0c27-M-00003c20")

	assert.False(t, rational.Equal(telelogic))
	assert.Equal(t, SchemeTelelogic, telelogic.Scheme())
	assert.Equal(t, "urn:telelogic::1-48beda447cfb0c27-M-00003c20", telelogic.String())
}

func TestURN_CaseNormalization(t *testing.T) {
	u, err := ParseURN("urn:rational::1-48BEDA447CFB0C27-M-00003C20")
	require.NoError(t, err)
	assert.Equal(t, "urn:rational::1-48beda447cfb0c27-M-00003c20", u.String())
}

func TestURNID_Accessors(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		id := SimpleID(0x3c20)
		assert.False(t, id.IsObjectRef())
		k, ok := id.Key()
		require.True(t, ok)
		assert.Equal(t, Key(0x3c20), k)
		_, _, refOK := id.ObjectRef()
		assert.False(t, refOK)
	})

	t.Run("object reference", func(t *testing.T) {
		id := ObjectRefID(2, 0x3c20)
		assert.True(t, id.IsObjectRef())
		absNo, moduleKey, ok := id.ObjectRef()
		require.True(t, ok)
		assert.Equal(t, uint64(2), absNo)
		assert.Equal(t, Key(0x3c20), moduleKey)
		_, keyOK := id.Key()
		assert.False(t, keyOK)
	})
}

func TestMustParseURN(t *testing.T) {
	t.Run("panics on invalid URN", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParseURN("urn:foo::1-nope")
		})
	})
}

func TestURN_MapKey(t *testing.T) {
	u1 := MustParseURN("urn:rational::1-48beda447cfb0c27-M-00003c20")
	u2 := MustParseURN("urn:rational::1-48beda447cfb0c27-M-00003c20")
	u3 := MustParseURN("urn:rational::1-48beda447cfb0c27-F-00000003")

	kinds := map[URN]string{u1: "module", u3: "folder"}
	assert.Equal(t, "module", kinds[u2])
	assert.Len(t, kinds, 2)
}

func TestURN_JSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		u := MustParseURN("urn:rational::1-48beda447cfb0c27-O-2-00003c20")

		data, err := json.Marshal(u)
		require.NoError(t, err)
		assert.Equal(t, `"urn:rational::1-48beda447cfb0c27-O-2-00003c20"`, string(data))

		var back URN
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, u, back)
	})

	t.Run("zero URN marshals as null", func(t *testing.T) {
		data, err := json.Marshal(URN{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})
}

func TestURN_SQL(t *testing.T) {
	t.Run("scan and value round trip", func(t *testing.T) {
		var u URN
		require.NoError(t, u.Scan("urn:telelogic::1-48beda447cfb0c27-M-00003c20"))
		assert.Equal(t, SchemeTelelogic, u.Scheme())

		v, err := u.Value()
		require.NoError(t, err)
		assert.Equal(t, "urn:telelogic::1-48beda447cfb0c27-M-00003c20", v)
	})

	t.Run("scan nil yields zero", func(t *testing.T) {
		var u URN
		require.NoError(t, u.Scan(nil))
		assert.True(t, u.IsZero())
	})
}

func TestDatabaseID(t *testing.T) {
	t.Run("normalizes to lowercase", func(t *testing.T) {
		d, err := ParseDatabaseID("48BEDA447CFB0C27")
		require.NoError(t, err)
		assert.Equal(t, "48beda447cfb0c27", d.String())
	})

	t.Run("equality is on the normalized form", func(t *testing.T) {
		a := MustParseDatabaseID("48BEDA447CFB0C27")
		b := MustParseDatabaseID("48beda447cfb0c27")
		assert.True(t, a.Equal(b))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseDatabaseID("48beda447cfb0c2")
		assert.Error(t, err)
	})

	t.Run("rejects non-hex", func(t *testing.T) {
		_, err := ParseDatabaseID("48beda447cfb0c2z")
		assert.Error(t, err)
	})

	t.Run("json round trip", func(t *testing.T) {
		d := MustParseDatabaseID("48beda447cfb0c27")
		data, err := json.Marshal(d)
		require.NoError(t, err)
		var back DatabaseID
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, d, back)
	})
}
