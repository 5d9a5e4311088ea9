package lazyfsm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func turnstileTable() *Table[string, string] {
	t := NewTable[string, string]()
	t.From("locked").On("coin").To("unlocked")
	t.From("locked").On("push").To("locked")
	t.From("unlocked").On("coin").To("unlocked")
	t.From("unlocked").On("push").To("locked")
	return t
}

func TestTable_Compile(t *testing.T) {
	tr := turnstileTable().Compile()
	ctx := context.Background()

	succ, err := tr(ctx, "locked", "coin")
	require.NoError(t, err)
	require.Equal(t, []string{"unlocked"}, succ.States())

	succ, err = tr(ctx, "unlocked", "push")
	require.NoError(t, err)
	require.Equal(t, []string{"locked"}, succ.States())
}

func TestTable_MissingEntryIsIllegal(t *testing.T) {
	tr := turnstileTable().Compile()

	_, err := tr(context.Background(), "locked", "kick")
	require.ErrorIs(t, err, ErrIllegalTransition)
	require.ErrorContains(t, err, "state=locked")
	require.ErrorContains(t, err, "symbol=kick")
}

func TestTable_DrivesMachine(t *testing.T) {
	f := MustNew(Config[string, string]{
		Name:       "turnstile",
		Initial:    "locked",
		Universe:   NewStateSet("locked", "unlocked"),
		Accepting:  NewStateSet("unlocked"),
		Transition: turnstileTable().Compile(),
	})

	got, err := f.Process(context.Background(), []string{"coin", "push", "coin"})
	require.NoError(t, err)
	require.True(t, got.Equal(NewStateSet("unlocked")))

	_, err = f.Process(context.Background(), []string{"coin", "kick"})
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTable_ToAny(t *testing.T) {
	tbl := NewTable[string, string]()
	tbl.From("start").On("split").ToAny("left", "right")
	tbl.From("left").On("walk").To("end")
	tbl.From("right").On("walk").To("end")

	f := MustNew(Config[string, string]{
		Initial:    "start",
		Transition: tbl.Compile(),
	})
	ctx := context.Background()

	got, err := f.Process(ctx, []string{"split"})
	require.NoError(t, err)
	require.True(t, got.Equal(NewStateSet("left", "right")))

	got, err = f.Step(ctx, got, "walk")
	require.NoError(t, err)
	require.True(t, got.Equal(NewStateSet("end")))
}

func TestTable_Dead(t *testing.T) {
	tbl := NewTable[string, string]()
	tbl.From("open").On("close").Dead()

	f := MustNew(Config[string, string]{
		Initial:    "open",
		Transition: tbl.Compile(),
	})

	got, err := f.Process(context.Background(), []string{"close"})
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

func TestTable_OverwriteAndLen(t *testing.T) {
	tbl := NewTable[string, string]()
	tbl.From("a").On("go").To("b")
	tbl.From("a").On("go").To("c")
	require.Equal(t, 1, tbl.Len())

	succ, err := tbl.Compile()(context.Background(), "a", "go")
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, succ.States())
}

func TestTable_CompileSnapshots(t *testing.T) {
	tbl := NewTable[string, string]()
	tbl.From("a").On("go").To("b")
	tr := tbl.Compile()

	// edits after Compile must not leak into the snapshot
	tbl.From("a").On("go").To("z")

	succ, err := tr(context.Background(), "a", "go")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, succ.States())
}
