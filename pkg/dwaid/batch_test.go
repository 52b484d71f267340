package dwaid

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchDecoder_DecodeGUIDs(t *testing.T) {
	d := NewBatchDecoder(nil)

	t.Run("all well-formed", func(t *testing.T) {
		guids, err := d.DecodeGUIDs([]string{
			"AB:48beda447cfb0c27:21:2100003c20:28ffffffff:{null,0}",
			"AB:48beda447cfb0c27:19:1900000003:28ffffffff",
		})
		require.NoError(t, err)
		assert.Len(t, guids, 2)
	})

	t.Run("malformed entries are skipped, not fatal", func(t *testing.T) {
		guids, err := d.DecodeGUIDs([]string{
			"AB:48beda447cfb0c27:21:2100003c20:28ffffffff",
			"ab:wrong-header:21:2100003c20:28ffffffff",
			"AB:48beda447cfb0c27:23:2100003c20:2800000002",
			"AB:xyz:21:2100003c20:28ffffffff",
		})

		require.Len(t, guids, 2)
		assert.Equal(t, TypeFormalModule, guids[0].TypeCode())
		assert.Equal(t, TypeObject, guids[1].TypeCode())

		require.Error(t, err)
		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 2)

		// Every collected failure still carries its field-precise cause.
		var parseErr *GUIDParseError
		require.ErrorAs(t, merr.Errors[1], &parseErr)
		assert.Equal(t, GUIDFieldDatabaseID, parseErr.Field)
	})

	t.Run("empty batch", func(t *testing.T) {
		guids, err := d.DecodeGUIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, guids)
	})
}

func TestBatchDecoder_DecodeURNs(t *testing.T) {
	d := NewBatchDecoder(nil)

	t.Run("mixed batch keeps the good entries", func(t *testing.T) {
		urns, err := d.DecodeURNs([]string{
			"urn:rational::1-48beda447cfb0c27-M-00003c20",
			"urn:foo::1-48beda447cfb0c27-M-00003c20",
			"urn:telelogic::1-48beda447cfb0c27-O-2-00003c20",
		})

		require.Len(t, urns, 2)
		assert.Equal(t, KindFormalModule, urns[0].Kind())
		assert.Equal(t, KindObject, urns[1].Kind())

		require.Error(t, err)
		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 1)

		var parseErr *URNParseError
		require.ErrorAs(t, merr.Errors[0], &parseErr)
		assert.Equal(t, URNFieldScheme, parseErr.Field)
	})
}
