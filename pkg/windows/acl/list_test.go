package acl

import (
	"encoding/json"
	"testing"

	"github.com/ivan-rueda-duarte/winsec/pkg/windows/sid"
	"github.com/stretchr/testify/require"
)

func TestNewListCopies(t *testing.T) {
	src := []Entry{
		NewEntry("S-1-1-0", 0x1F, 0, Allow),
		NewEntry("S-1-5-32-544", 0x2, FlagContainerInherit, Deny),
	}

	l := NewList(src...)
	require.Equal(t, 2, l.Len())

	// mutating the source slice must not leak into the list
	src[0].Subject = "S-1-1-9"
	require.True(t, l.Entries()[0].Equal(NewEntry("S-1-1-0", 0x1F, 0, Allow)))

	// element-wise equality with the originals
	l2 := NewList(l.Entries()...)
	es, es2 := l.Entries(), l2.Entries()
	require.Len(t, es2, len(es))
	for i := range es {
		require.True(t, es[i].Equal(es2[i]))
	}
}

func TestEntriesDetached(t *testing.T) {
	l := NewList(NewEntry("S-1-1-0", 0x1, 0, Allow))

	view := l.Entries()
	view[0].Mask = 0xFF

	require.EqualValues(t, 0x1, l.Entries()[0].Mask)

	// traversal restarts from the head on every call, unaffected by
	// appends in between
	first := l.Entries()
	l.Allow("S-1-5-32-545", 0x2, 0)
	require.Len(t, first, 1)
	require.Len(t, l.Entries(), 2)
}

func TestAllowDeny(t *testing.T) {
	l := NewList()

	l.Allow("S-1-1-0", 0x1F, 0)
	l.Deny("S-1-1-0", 0x2, FlagObjectInherit)
	l.Allow("S-1-1-0", 0x1F, 0) // duplicates are legal

	es := l.Entries()
	require.Len(t, es, 3)
	require.True(t, es[0].Equal(NewEntry("S-1-1-0", 0x1F, 0, Allow)))
	require.True(t, es[1].Equal(NewEntry("S-1-1-0", 0x2, FlagObjectInherit, Deny)))
	require.True(t, es[2].Equal(es[0]))
}

func TestReassign(t *testing.T) {
	t.Run("basic rewrite", func(t *testing.T) {
		l := NewList(NewEntry("S-1-1-0", 0x1F, 0, Allow))

		res := l.Reassign("S-1-1-0", "S-1-1-1")
		require.Same(t, l, res)

		es := l.Entries()
		require.Len(t, es, 1)
		require.True(t, es[0].Equal(NewEntry("S-1-1-1", 0x1F, 0, Allow)))
	})

	t.Run("inherited entries are skipped", func(t *testing.T) {
		e := NewEntry("S-1-1-0", 0x1F, FlagInherited, Allow)
		l := NewList(e)

		l.Reassign("S-1-1-0", "S-1-1-1")

		es := l.Entries()
		require.Len(t, es, 1)
		require.True(t, es[0].Equal(e))
	})

	t.Run("order preserved around matches", func(t *testing.T) {
		l := NewList(
			NewEntry("S-1-5-32-544", 0x1, 0, Deny),
			NewEntry("S-1-1-0", 0x2, 0, Allow),
			NewEntry("S-1-5-32-545", 0x4, FlagContainerInherit, Allow),
			NewEntry("S-1-1-0", 0x8, FlagInherited, Allow),
			NewEntry("S-1-1-0", 0x10, 0, Deny),
		)

		l.Reassign("S-1-1-0", "S-1-1-7")

		es := l.Entries()
		require.Len(t, es, 5)
		require.True(t, es[0].Equal(NewEntry("S-1-5-32-544", 0x1, 0, Deny)))
		require.True(t, es[1].Equal(NewEntry("S-1-1-7", 0x2, 0, Allow)))
		require.True(t, es[2].Equal(NewEntry("S-1-5-32-545", 0x4, FlagContainerInherit, Allow)))
		require.True(t, es[3].Equal(NewEntry("S-1-1-0", 0x8, FlagInherited, Allow)))
		require.True(t, es[4].Equal(NewEntry("S-1-1-7", 0x10, 0, Deny)))
	})

	t.Run("absent subject is a no-op", func(t *testing.T) {
		orig := []Entry{
			NewEntry("S-1-1-0", 0x1F, 0, Allow),
			NewEntry("S-1-5-32-544", 0x2, 0, Deny),
		}
		l := NewList(orig...)

		l.Reassign("S-1-5-32-547", "S-1-1-1")

		es := l.Entries()
		require.Len(t, es, len(orig))
		for i := range orig {
			require.True(t, es[i].Equal(orig[i]))
		}
	})

	t.Run("chaining", func(t *testing.T) {
		l := NewList(NewEntry("S-1-1-0", 0x1, 0, Allow))

		es := l.Reassign("S-1-1-0", "S-1-1-1").Reassign("S-1-1-1", "S-1-1-2").Entries()
		require.True(t, es[0].Equal(NewEntry("S-1-1-2", 0x1, 0, Allow)))
	})
}

func TestReassignLocalSystem(t *testing.T) {
	t.Run("compensating entry prepended", func(t *testing.T) {
		l := NewList(NewEntry(sid.LocalSystem, 0x2, 0, Allow))

		l.Reassign(sid.LocalSystem, "S-1-1-5")

		es := l.Entries()
		require.Len(t, es, 2)
		require.True(t, es[0].Equal(NewEntry(sid.LocalSystem, StandardRightsAll|SpecificRightsAll, 0, Allow)))
		require.True(t, es[1].Equal(NewEntry("S-1-1-5", 0x2, 0, Allow)))
	})

	t.Run("rewritten entries shift by one", func(t *testing.T) {
		l := NewList(
			NewEntry("S-1-1-0", 0x1, 0, Allow),
			NewEntry(sid.LocalSystem, 0x2, 0, Deny),
		)

		l.Reassign(sid.LocalSystem, "S-1-1-5")

		es := l.Entries()
		require.Len(t, es, 3)
		require.EqualValues(t, sid.LocalSystem, es[0].Subject)
		require.EqualValues(t, FullControl, es[0].Mask)
		require.True(t, es[1].Equal(NewEntry("S-1-1-0", 0x1, 0, Allow)))
		require.True(t, es[2].Equal(NewEntry("S-1-1-5", 0x2, 0, Deny)))
	})

	t.Run("no prepend when only inherited entries match", func(t *testing.T) {
		l := NewList(NewEntry(sid.LocalSystem, 0x2, FlagInherited, Allow))

		l.Reassign(sid.LocalSystem, "S-1-1-5")

		es := l.Entries()
		require.Len(t, es, 1)
		require.True(t, es[0].Equal(NewEntry(sid.LocalSystem, 0x2, FlagInherited, Allow)))
	})

	t.Run("no prepend when system is the target", func(t *testing.T) {
		// the special case watches the old subject only
		l := NewList(NewEntry("S-1-1-0", 0x2, 0, Allow))

		l.Reassign("S-1-1-0", sid.LocalSystem)

		es := l.Entries()
		require.Len(t, es, 1)
		require.True(t, es[0].Equal(NewEntry(sid.LocalSystem, 0x2, 0, Allow)))
	})

	t.Run("no prepend when system is absent", func(t *testing.T) {
		l := NewList(NewEntry("S-1-1-0", 0x2, 0, Allow))

		l.Reassign(sid.LocalSystem, "S-1-1-5")

		require.Equal(t, 1, l.Len())
	})
}

func TestListJSON(t *testing.T) {
	l := NewList(
		NewEntry("S-1-1-0", 0x1F, FlagContainerInherit, Allow),
		NewEntry(sid.LocalSystem, FullControl, 0, Deny),
	)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var restored List
	require.NoError(t, json.Unmarshal(data, &restored))

	es, rs := l.Entries(), restored.Entries()
	require.Len(t, rs, len(es))
	for i := range es {
		require.True(t, es[i].Equal(rs[i]))
	}

	t.Run("empty list encodes as empty array", func(t *testing.T) {
		data, err := json.Marshal(NewList())
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(data))
	})
}
