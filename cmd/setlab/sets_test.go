package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/setlab/utils/collections"
)

func newTestLogger() (*logrus.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}

func TestNewStringSet(t *testing.T) {
	for _, kind := range []string{KindTree, KindTrie, KindTable, KindHash} {
		s, err := newStringSet(kind, 4)
		require.Nil(t, err)
		require.NotNil(t, s)
	}
	_, err := newStringSet("list", 4)
	require.ErrorIs(t, err, ErrUnknownKind)
	_, err = newStringSet(KindTable, 1)
	require.ErrorIs(t, err, collections.ErrInvalidBits)
}

func TestParseOperation(t *testing.T) {
	op, err := parseOperation("+cat")
	require.Nil(t, err)
	require.Equal(t, operation{kind: opAdd, value: "cat"}, op)
	op, err = parseOperation("-")
	require.Nil(t, err)
	require.Equal(t, operation{kind: opRemove, value: ""}, op)
	_, err = parseOperation("")
	require.ErrorIs(t, err, ErrBadOperation)
	_, err = parseOperation("cat")
	require.ErrorIs(t, err, ErrBadOperation)
}

func TestApply(t *testing.T) {
	s, err := newStringSet(KindTrie, 0)
	require.Nil(t, err)
	logger, hook := newTestLogger()
	ops := make([]operation, 0)
	for _, arg := range []string{"+cat", "+car", "+cat", "?ca", "-cat", "?car", "?cat"} {
		op, err := parseOperation(arg)
		require.Nil(t, err)
		ops = append(ops, op)
	}
	results, err := apply(s, ops, logger)
	require.Nil(t, err)
	outcomes := make([]bool, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r.outcome)
	}
	require.Equal(t, []bool{true, true, false, false, true, true, false}, outcomes)
	require.Equal(t, "+cat true", results[0].String())
	require.Equal(t, len(ops), len(hook.AllEntries()))
}

func TestApplyCapacityExceeded(t *testing.T) {
	s, err := newStringSet(KindTable, 2)
	require.Nil(t, err)
	logger, hook := newTestLogger()
	ops := []operation{
		{kind: opAdd, value: "a"},
		{kind: opAdd, value: "b"},
		{kind: opAdd, value: "c"},
		{kind: opAdd, value: "d"},
		{kind: opAdd, value: "e"},
		{kind: opAdd, value: "f"},
	}
	results, err := apply(s, ops, logger)
	require.ErrorIs(t, err, collections.ErrCapacityExceeded)
	require.Equal(t, 4, len(results))
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestLoadAndDescribe(t *testing.T) {
	s, err := newStringSet(KindTree, 0)
	require.Nil(t, err)
	logger, _ := newTestLogger()
	added, err := load(s, strings.NewReader("m c x\na c\n  z"), logger)
	require.Nil(t, err)
	require.Equal(t, 5, added)
	var out bytes.Buffer
	describe(s, &out, true)
	require.Contains(t, out.String(), "size: 5")
	require.Contains(t, out.String(), "entries: [a c m x z]")
	require.Contains(t, out.String(), "height: 3")
	require.Contains(t, out.String(), "L: c")

	table, err := newStringSet(KindTable, 3)
	require.Nil(t, err)
	out.Reset()
	describe(table, &out, false)
	require.Contains(t, out.String(), "capacity: 8")
}
