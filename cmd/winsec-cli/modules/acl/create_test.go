package acl

import (
	"testing"

	winacl "github.com/ivan-rueda-duarte/winsec/pkg/windows/acl"
	"github.com/stretchr/testify/require"
)

func TestParseMask(t *testing.T) {
	for s, expected := range map[string]uint32{
		"full":      winacl.FullControl,
		"FULL":      winacl.FullControl,
		"delete":    winacl.RightDelete,
		"0x1F0000":  winacl.StandardRightsAll,
		"16":        0x10,
		"0xFFFF":    winacl.SpecificRightsAll,
		"write-dac": winacl.RightWriteDAC,
	} {
		mask, err := parseMask(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, mask, s)
	}

	for _, s := range []string{"", "fullest", "0x1FFFFFFFF", "-1"} {
		_, err := parseMask(s)
		require.Error(t, err, s)
	}
}

func TestParseFlags(t *testing.T) {
	flags, err := parseFlags("oi,ci")
	require.NoError(t, err)
	require.Equal(t, winacl.FlagObjectInherit|winacl.FlagContainerInherit, flags)

	flags, err = parseFlags("IO, inherited")
	require.NoError(t, err)
	require.Equal(t, winacl.FlagInheritOnly|winacl.FlagInherited, flags)

	_, err = parseFlags("oi,propagate")
	require.Error(t, err)
}

func TestAppendRule(t *testing.T) {
	l := winacl.NewList()

	require.NoError(t, appendRule(l, []string{"allow", "S-1-5-32-544", "full", "ci,oi"}))
	require.NoError(t, appendRule(l, []string{"deny", "S-1-1-0", "0x10000"}))

	es := l.Entries()
	require.Len(t, es, 2)
	require.True(t, es[0].Equal(winacl.NewEntry("S-1-5-32-544", winacl.FullControl,
		winacl.FlagContainerInherit|winacl.FlagObjectInherit, winacl.Allow)))
	require.True(t, es[1].Equal(winacl.NewEntry("S-1-1-0", 0x10000, 0, winacl.Deny)))

	t.Run("invalid rules", func(t *testing.T) {
		for _, args := range [][]string{
			{"allow", "S-1-1-0"},
			{"revoke", "S-1-1-0", "full"},
			{"allow", "S-1-1-0", "fullest"},
			{"allow", "S-1-1-0", "full", "xx"},
		} {
			require.Error(t, appendRule(winacl.NewList(), args))
		}
	})
}
