package collections

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestTrieSet(t *testing.T) {
	s := NewTrieSet()
	for _, w := range []string{"cat", "car", "dog"} {
		added, err := s.Add(w)
		require.Nil(t, err)
		require.Equal(t, true, added)
	}
	added, _ := s.Add("car")
	require.Equal(t, false, added)
	require.Equal(t, 3, s.Size())
	require.Equal(t, false, s.Contains("ca"))
	require.Equal(t, true, s.Contains("car"))
	require.Equal(t, false, s.Contains("cars"))
	require.Equal(t, false, s.Contains(""))
	require.ElementsMatch(t, []string{"cat", "car", "dog"}, s.Entries())

	require.Equal(t, true, s.Remove("cat"))
	require.Equal(t, false, s.Contains("cat"))
	require.Equal(t, true, s.Contains("car"))
	require.Equal(t, false, s.Remove("cat"))
	require.Equal(t, false, s.Remove("ca"))
	require.Equal(t, false, s.Remove("zebra"))
	require.Equal(t, 2, s.Size())
	require.ElementsMatch(t, []string{"car", "dog"}, s.Entries())

	// the dead "cat" branch is reused
	added, _ = s.Add("cat")
	require.Equal(t, true, added)
	require.Equal(t, 3, s.Size())
}

func TestTrieSetInsertionOrder(t *testing.T) {
	s := NewTrieSet()
	for _, w := range []string{"dog", "car", "ca", "cat", "do"} {
		_, _ = s.Add(w)
	}
	// children are visited in the order their characters were first seen
	require.Equal(t, []string{"dog", "do", "car", "ca", "cat"}, s.Entries())
	require.Equal(t, "[dog do car ca cat]", s.String())
}

func TestTrieSetPrefixesAndEmptyString(t *testing.T) {
	s := NewTrieSet()
	added, _ := s.Add("")
	require.Equal(t, true, added)
	require.Equal(t, true, s.Contains(""))
	_, _ = s.Add("ab")
	_, _ = s.Add("abc")
	require.Equal(t, 3, s.Size())
	require.Equal(t, []string{"", "ab", "abc"}, s.Entries())
	require.Equal(t, true, s.HasPrefix("a"))
	require.Equal(t, true, s.HasPrefix("abc"))
	require.Equal(t, false, s.HasPrefix("abd"))
	require.Equal(t, true, s.Remove("abc"))
	require.Equal(t, false, s.HasPrefix("abc"))
	require.Equal(t, true, s.HasPrefix("ab"))
	require.Equal(t, true, s.Remove(""))
	require.Equal(t, false, s.Contains(""))
	require.Equal(t, []string{"ab"}, s.Entries())
}

func TestTrieSetUnicode(t *testing.T) {
	s := NewTrieSet()
	_, _ = s.Add("ёж")
	_, _ = s.Add("ёлка")
	require.Equal(t, true, s.Contains("ёж"))
	require.Equal(t, false, s.Contains("ё"))
	require.Equal(t, true, s.HasPrefix("ё"))
	require.Equal(t, []string{"ёж", "ёлка"}, s.Entries())
}

func TestTrieSetClear(t *testing.T) {
	s := NewTrieSet()
	_, _ = s.Add("one")
	_, _ = s.Add("two")
	s.Clear()
	require.Equal(t, 0, s.Size())
	require.Equal(t, false, s.Contains("one"))
	require.Equal(t, 0, len(s.Entries()))
}

func TestTrieSetIterator(t *testing.T) {
	s := NewTrieSet()
	for _, w := range []string{"cat", "car", "dog", "do"} {
		_, _ = s.Add(w)
	}
	it := s.Iterator()
	require.ErrorIs(t, it.Remove(), ErrIllegalState)
	visited := make([]string, 0)
	for it.HasNext() {
		v, err := it.Next()
		require.Nil(t, err)
		visited = append(visited, v)
		if v == "car" || v == "do" {
			require.Nil(t, it.Remove())
			require.ErrorIs(t, it.Remove(), ErrIllegalState)
		}
	}
	require.Equal(t, []string{"cat", "car", "dog", "do"}, visited)
	require.Equal(t, []string{"cat", "dog"}, s.Entries())
	require.Equal(t, 2, s.Size())
	_, err := it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func TestTrieSetRandomOperations(t *testing.T) {
	faker := gofakeit.New(11)
	s := NewTrieSet()
	oracle := NewHashSet(func(v string) string {
		return v
	})
	for i := 0; i < 2000; i++ {
		w := faker.LetterN(uint(faker.Number(0, 4)))
		if faker.Number(0, 2) > 0 {
			added, _ := s.Add(w)
			expected, _ := oracle.Add(w)
			require.Equal(t, expected, added)
		} else {
			require.Equal(t, oracle.Remove(w), s.Remove(w))
		}
		require.Equal(t, oracle.Size(), s.Size())
		require.Equal(t, oracle.Contains(w), s.Contains(w))
	}
	entries := s.Entries()
	require.ElementsMatch(t, oracle.Entries(), entries)
	sorted := slices.Clone(entries)
	slices.Sort(sorted)
	require.Equal(t, len(sorted), len(slices.Compact(sorted)))
	for _, w := range entries {
		require.Equal(t, true, s.Contains(w))
	}
}

func TestTrieSetInvalidUTF8(t *testing.T) {
	s := NewTrieSet()
	added, _ := s.Add("\xff")
	require.Equal(t, true, added)
	added, _ = s.Add("\xfe")
	require.Equal(t, true, added)
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains("\xff"))
	require.Equal(t, true, s.Contains("\xfe"))
	require.Equal(t, false, s.Contains("\uFFFD"))
	added, _ = s.Add("\uFFFD")
	require.Equal(t, true, added)
	_, _ = s.Add("a\xffb")
	require.Equal(t, false, s.Contains("a\xfeb"))
	require.Equal(t, []string{"\xff", "\xfe", "\uFFFD", "a\xffb"}, s.Entries())
	require.Equal(t, true, s.Remove("\xff"))
	require.Equal(t, true, s.Contains("\xfe"))
	require.Equal(t, []string{"\xfe", "\uFFFD", "a\xffb"}, s.Entries())
}
