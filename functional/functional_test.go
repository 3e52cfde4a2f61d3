//go:build functional_tests

package functional

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	trie "github.com/datnguyenzzz/nogodb/lib/go-trie-index"
)

type TrieSuite struct {
	suite.Suite
	trie *trie.Trie
}

func (s *TrieSuite) SetupTest() {
	s.trie = trie.New(
		trie.WithFilePath(filepath.Join(s.T().TempDir(), "trie.index")),
		trie.WithSyncWrites(false),
	)
	s.Require().NoError(s.trie.Open(context.Background()))
}

func (s *TrieSuite) TearDownTest() {
	_ = s.trie.Close(context.Background())
}

func (s *TrieSuite) Test_EndToEnd_Scenario() {
	ctx := context.Background()

	assert.NoError(s.T(), s.trie.Insert(ctx, trie.Key("cat"), 1))
	assert.NoError(s.T(), s.trie.Insert(ctx, trie.Key("car"), 2))
	assert.NoError(s.T(), s.trie.Insert(ctx, trie.Key("dog"), 3))

	got, err := s.trie.Lookup(ctx, trie.Key("cat"))
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []uint32{1}, got)

	got, err = s.trie.Lookup(ctx, trie.Key("ca"))
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), got, "path node is not an inserted key")

	got, err = s.trie.Lookup(ctx, trie.Key("do"))
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), got)

	results, err := s.trie.PrefixSearch(ctx, trie.Key("ca"))
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []trie.Entry{
		{Key: trie.Key("cat"), Values: []uint32{1}},
		{Key: trie.Key("car"), Values: []uint32{2}},
	}, results, "'cat' linked the 't' edge before 'car' linked 'r'")

	results, err = s.trie.PrefixSearch(ctx, trie.Key("do"))
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []trie.Entry{
		{Key: trie.Key("dog"), Values: []uint32{3}},
	}, results)
}

func (s *TrieSuite) Test_LookupAfterInsert_Random_tests() {
	totalTestCases := 500
	ctx := context.Background()

	inserted := make(map[string]uint32, totalTestCases)
	for i := 0; i < totalTestCases; i++ {
		k := generateKey(3 + rand.Intn(8))
		v := uint32(rand.Intn(1<<16) + 1)
		s.T().Logf("Test_LookupAfterInsert_Random_tests: Insert key %q, value %v", k, v)
		if _, ok := inserted[string(k)]; ok {
			continue
		}
		inserted[string(k)] = v
		assert.NoError(s.T(), s.trie.Insert(ctx, k, v), "should be able to insert key")
	}

	for k, v := range inserted {
		got, err := s.trie.Lookup(ctx, trie.Key(k))
		assert.NoError(s.T(), err, "should be able to look up key")
		assert.Equal(s.T(), []uint32{v}, got, "values must match")
	}
}

func (s *TrieSuite) Test_GenerateLoadSearch_Pipeline() {
	ctx := context.Background()

	var data bytes.Buffer
	genStats, err := trie.GenerateTestData(ctx, &data, 8*1024)
	assert.NoError(s.T(), err)
	assert.Positive(s.T(), genStats.Lines)

	loadStats, err := s.trie.LoadCSV(ctx, &data)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), genStats.Lines, loadStats.Inserted+loadStats.Skipped)

	results, err := s.trie.PrefixSearch(ctx, nil)
	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), results, "a loaded index enumerates its keys")

	for _, entry := range results {
		got, err := s.trie.Lookup(ctx, entry.Key)
		assert.NoError(s.T(), err)
		assert.Equal(s.T(), entry.Values, got, "enumerated keys round-trip through Lookup")
	}
}

func TestTrieSuite(t *testing.T) {
	suite.Run(t, new(TrieSuite))
}
