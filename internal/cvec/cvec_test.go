package cvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cligram/internal/cvar"
)

func TestNewDefaults(t *testing.T) {
	testCases := []struct {
		name string
		n    int
	}{
		{name: "empty", n: 0},
		{name: "single", n: 1},
		{name: "several", n: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(tc.n)
			require.NotNil(t, v)
			require.Equal(t, tc.n, v.Len())
			for i := 0; i < tc.n; i++ {
				cv := v.I(i)
				require.NotNil(t, cv)
				assert.Equal(t, cvar.Err, cv.Type())
				assert.Equal(t, "", cv.Name())
			}
		})
	}
}

func TestNilVecReads(t *testing.T) {
	var v *Vec

	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.I(0))
	assert.Nil(t, v.Each(nil))
	assert.Nil(t, v.Each1(nil))
	assert.Nil(t, v.Find("x"))
	assert.Equal(t, "", v.Name())
	assert.Nil(t, v.Dup())
	v.Reset() // must not fault
}

func TestAddGrowsByOne(t *testing.T) {
	v := New(0)

	cv := v.Add(cvar.Int32)
	require.NotNil(t, cv)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, cvar.Int32, cv.Type())

	v.Add(cvar.String)
	assert.Equal(t, 2, v.Len())
}

func TestAddInvalidatesOldPointers(t *testing.T) {
	v := New(1)
	old := v.I(0)
	old.SetName("first")

	v.Add(cvar.String)

	// Storage was reallocated: the old pointer no longer aliases slot 0,
	// which still carries the data it had before the mutation.
	assert.NotSame(t, old, v.I(0))
	assert.Equal(t, "first", v.I(0).Name())
}

func TestAppendVarRoundTrip(t *testing.T) {
	src := &cvar.Var{}
	src.SetType(cvar.String)
	src.SetName("greeting")
	require.NoError(t, src.SetString("hello"))

	v := New(0)
	tail := v.AppendVar(src)
	require.NotNil(t, tail)

	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "hello", v.IStr(0))
	assert.Equal(t, "greeting", v.I(0).Name())
}

func TestAppendVarNilArgs(t *testing.T) {
	v := New(0)
	assert.Nil(t, v.AppendVar(nil))
	assert.Equal(t, 0, v.Len())

	var nilVec *Vec
	cv := &cvar.Var{}
	assert.Nil(t, nilVec.AppendVar(cv))
}

func TestDelByIdentity(t *testing.T) {
	v := New(0)
	for _, name := range []string{"a", "b", "c"} {
		cv := v.Add(cvar.String)
		cv.SetName(name)
		require.NoError(t, cv.SetString(name))
	}

	n, found := v.Del(v.I(1))
	require.True(t, found)
	assert.Equal(t, 2, n)
	assert.Equal(t, "a", v.I(0).Name())
	assert.Equal(t, "c", v.I(1).Name())
}

func TestDelNotFound(t *testing.T) {
	v := New(2)
	stale := &cvar.Var{}

	n, found := v.Del(stale)
	assert.False(t, found)
	assert.Equal(t, 2, n)

	empty := New(0)
	n, found = empty.Del(stale)
	assert.False(t, found)
	assert.Equal(t, 0, n)
}

func TestDelI(t *testing.T) {
	testCases := []struct {
		name        string
		start       []string
		index       int
		expected    []string
		expectedLen int
	}{
		{name: "first", start: []string{"a", "b", "c"}, index: 0, expected: []string{"b", "c"}, expectedLen: 2},
		{name: "middle", start: []string{"a", "b", "c"}, index: 1, expected: []string{"a", "c"}, expectedLen: 2},
		{name: "last", start: []string{"a", "b", "c"}, index: 2, expected: []string{"a", "b"}, expectedLen: 2},
		{name: "out of range", start: []string{"a"}, index: 3, expected: []string{"a"}, expectedLen: 1},
		{name: "negative", start: []string{"a"}, index: -1, expected: []string{"a"}, expectedLen: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := New(0)
			for _, name := range tc.start {
				v.Add(cvar.String).SetName(name)
			}
			assert.Equal(t, tc.expectedLen, v.DelI(tc.index))
			require.Equal(t, len(tc.expected), v.Len())
			for i, name := range tc.expected {
				assert.Equal(t, name, v.I(i).Name())
			}
		})
	}
}

func TestIStr(t *testing.T) {
	v := New(0)
	s := v.Add(cvar.String)
	require.NoError(t, s.SetString("text"))
	n := v.Add(cvar.Int32)
	require.NoError(t, n.SetInt64(7))

	assert.Equal(t, "text", v.IStr(0))
	assert.Equal(t, "", v.IStr(1), "non-string record has no string form")
	assert.Equal(t, "", v.IStr(99), "out of range is a miss")
}

func TestEachOrder(t *testing.T) {
	v := New(0)
	for _, name := range []string{"a", "b", "c"} {
		v.Add(cvar.String).SetName(name)
	}

	var got []string
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		got = append(got, cv.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEach1SkipsCommandLine(t *testing.T) {
	v := Start("show interfaces eth0")
	v.Add(cvar.String).SetName("arg1")
	v.Add(cvar.String).SetName("arg2")

	var got []string
	for cv := v.Each1(nil); cv != nil; cv = v.Each1(cv) {
		got = append(got, cv.Name())
	}
	assert.Equal(t, []string{"arg1", "arg2"}, got)

	single := Start("just the line")
	assert.Nil(t, single.Each1(nil))
}

func TestStart(t *testing.T) {
	v := Start("interface eth0 mtu 1500")

	require.Equal(t, 1, v.Len())
	cv := v.I(0)
	assert.Equal(t, cvar.Rest, cv.Type())
	assert.Equal(t, "cmd", cv.Name())
	assert.Equal(t, "interface eth0 mtu 1500", cv.StringVal())
}

func TestDupIsDeep(t *testing.T) {
	v := New(0)
	v.SetName("args")
	cv := v.Add(cvar.String)
	cv.SetName("a")
	require.NoError(t, cv.SetString("one"))

	dup := v.Dup()
	require.NotNil(t, dup)
	require.Equal(t, v.Len(), dup.Len())
	assert.Equal(t, "args", dup.Name())
	assert.Equal(t, "one", dup.IStr(0))

	// Mutating the copy must not affect the original, and vice versa.
	require.NoError(t, dup.I(0).SetString("changed"))
	dup.Add(cvar.Bool)
	assert.Equal(t, "one", v.IStr(0))
	assert.Equal(t, 1, v.Len())
}

func TestFind(t *testing.T) {
	v := New(0)
	kw := v.Add(cvar.String)
	kw.SetName("mode")
	kw.SetConst(true)
	require.NoError(t, kw.SetString("fast"))

	bound := v.Add(cvar.String)
	bound.SetName("mode")
	require.NoError(t, bound.SetString("slow"))

	unnamed := v.Add(cvar.Int32)
	require.NoError(t, unnamed.SetInt64(1))

	t.Run("first match wins", func(t *testing.T) {
		cv := v.Find("mode")
		require.NotNil(t, cv)
		assert.Equal(t, "fast", cv.StringVal())
	})
	t.Run("absent name misses", func(t *testing.T) {
		assert.Nil(t, v.Find("nope"))
	})
	t.Run("empty name matches first unnamed", func(t *testing.T) {
		cv := v.Find("")
		require.NotNil(t, cv)
		assert.Equal(t, int64(1), cv.Int64())
	})
	t.Run("keyword filter", func(t *testing.T) {
		cv := v.FindKeyword("mode")
		require.NotNil(t, cv)
		assert.Equal(t, "fast", cv.StringVal())
	})
	t.Run("variable filter", func(t *testing.T) {
		cv := v.FindVar("mode")
		require.NotNil(t, cv)
		assert.Equal(t, "slow", cv.StringVal())
	})
	t.Run("string helper", func(t *testing.T) {
		assert.Equal(t, "fast", v.FindStr("mode"))
		assert.Equal(t, "", v.FindStr("nope"))
	})
}

func TestFindStrWrongTypeIsMiss(t *testing.T) {
	v := New(0)
	cv := v.Add(cvar.Int32)
	cv.SetName("n")
	require.NoError(t, cv.SetInt64(3))

	// Lossy by contract: a present non-string record looks like an absent one.
	assert.Equal(t, "", v.FindStr("n"))
}

func TestResetIsIdempotent(t *testing.T) {
	v := New(3)
	v.SetName("x")

	v.Reset()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, "", v.Name())

	v.Reset() // second reset must not fault
	assert.Equal(t, 0, v.Len())
}

func TestSetNameSelfReferential(t *testing.T) {
	v := New(0)
	v.SetName("original-name")

	v.SetName(v.Name()[:8])
	assert.Equal(t, "original", v.Name())
}

func TestFromVar(t *testing.T) {
	src := &cvar.Var{}
	src.SetType(cvar.String)
	require.NoError(t, src.SetString("solo"))

	v := FromVar(src)
	require.NotNil(t, v)
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "solo", v.IStr(0))

	assert.Nil(t, FromVar(nil))
}

func TestSizeGrowsWithContent(t *testing.T) {
	v := New(0)
	before := v.Size()

	cv := v.Add(cvar.String)
	cv.SetName("key")
	require.NoError(t, cv.SetString("value"))

	assert.Greater(t, v.Size(), before)
}

func TestExcludeKeywordsFlag(t *testing.T) {
	defer SetExcludeKeywords(false)

	assert.False(t, ExcludeKeywords())
	SetExcludeKeywords(true)
	assert.True(t, ExcludeKeywords())
	SetExcludeKeywords(false)
	assert.False(t, ExcludeKeywords())
}

func TestPrint(t *testing.T) {
	v := New(0)
	v.SetName("args")
	a := v.Add(cvar.String)
	a.SetName("ifname")
	require.NoError(t, a.SetString("eth0"))
	b := v.Add(cvar.Int32)
	require.NoError(t, b.SetInt64(1500))

	var out bytes.Buffer
	require.NoError(t, v.Print(&out))
	assert.Equal(t, "args:\n0 : ifname = eth0\n1 : 1500\n", out.String())
}

func TestWriteBuf(t *testing.T) {
	v := New(0)
	a := v.Add(cvar.String)
	a.SetName("db")
	require.NoError(t, a.SetString("running"))

	var b bytes.Buffer
	v.WriteBuf(&b)
	assert.Equal(t, "0 : db = running\n", b.String())
}
