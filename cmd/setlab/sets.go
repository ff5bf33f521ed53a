package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tuannh982/setlab/utils/collections"

	log "github.com/sirupsen/logrus"
)

const (
	KindTree  = "tree"
	KindTrie  = "trie"
	KindTable = "table"
	KindHash  = "hash"
)

var ErrUnknownKind = errors.New("unknown set kind")

var ErrBadOperation = errors.New("bad operation")

func identity(v string) string {
	return v
}

func newStringSet(kind string, bits int) (collections.Set[string], error) {
	switch kind {
	case KindTree:
		return collections.NewTreeSet[string](), nil
	case KindTrie:
		return collections.NewTrieSet(), nil
	case KindTable:
		table, err := collections.NewProbedSet(bits, collections.StringHash)
		if err != nil {
			return nil, err
		}
		return table, nil
	case KindHash:
		return collections.NewHashSet(identity), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type opKind byte

const (
	opAdd      opKind = '+'
	opRemove   opKind = '-'
	opContains opKind = '?'
)

type operation struct {
	kind  opKind
	value string
}

// parseOperation reads "+v", "-v" or "?v".
func parseOperation(s string) (operation, error) {
	if s == "" {
		return operation{}, fmt.Errorf("%w: empty", ErrBadOperation)
	}
	switch k := opKind(s[0]); k {
	case opAdd, opRemove, opContains:
		return operation{kind: k, value: s[1:]}, nil
	default:
		return operation{}, fmt.Errorf("%w: %q", ErrBadOperation, s)
	}
}

type result struct {
	op      operation
	outcome bool
}

func (r result) String() string {
	return fmt.Sprintf("%c%s %t", r.op.kind, r.op.value, r.outcome)
}

func apply(s collections.Set[string], ops []operation, logger *log.Entry) ([]result, error) {
	results := make([]result, 0, len(ops))
	for _, op := range ops {
		var outcome bool
		switch op.kind {
		case opAdd:
			added, err := s.Add(op.value)
			if err != nil {
				logger.WithField("value", op.value).WithError(err).Error("add failed")
				return results, err
			}
			outcome = added
		case opRemove:
			outcome = s.Remove(op.value)
		case opContains:
			outcome = s.Contains(op.value)
		}
		logger.WithFields(log.Fields{
			"op":      string(op.kind),
			"value":   op.value,
			"outcome": outcome,
			"size":    s.Size(),
		}).Debug("applied")
		results = append(results, result{op: op, outcome: outcome})
	}
	return results, nil
}

// load adds every whitespace separated word read from r.
func load(s collections.Set[string], r io.Reader, logger *log.Entry) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	added := 0
	for scanner.Scan() {
		word := scanner.Text()
		ok, err := s.Add(word)
		if err != nil {
			logger.WithField("word", word).WithError(err).Error("load stopped")
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, scanner.Err()
}

func describe(s collections.Set[string], w io.Writer, render bool) {
	fmt.Fprintf(w, "size: %d\n", s.Size())
	fmt.Fprintf(w, "entries: %v\n", s.Entries())
	if tree, ok := s.(*collections.TreeSet[string]); ok {
		fmt.Fprintf(w, "height: %d\n", tree.Height())
		if render {
			fmt.Fprintln(w, tree.Render())
		}
	}
	if table, ok := s.(*collections.ProbedSet[string]); ok {
		fmt.Fprintf(w, "capacity: %d\n", table.Capacity())
	}
}
