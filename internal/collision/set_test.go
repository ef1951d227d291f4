package collision

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	key   *big.Int
	label string
}

func (e entry) Key() *big.Int { return e.key }

func TestFindOrInsert_InsertsWhenAbsent(t *testing.T) {
	s := New[entry]()
	e := entry{key: big.NewInt(5), label: "a"}

	got, found := s.FindOrInsert(e.key, e)
	assert.False(t, found)
	assert.Equal(t, e, got)
	assert.Equal(t, 1, s.Len())
}

func TestFindOrInsert_ReturnsExistingOnCollision(t *testing.T) {
	s := New[entry]()
	a := entry{key: big.NewInt(5), label: "a"}
	b := entry{key: big.NewInt(5), label: "b"}

	s.FindOrInsert(a.key, a)
	got, found := s.FindOrInsert(b.key, b)

	assert.True(t, found)
	assert.Equal(t, a, got)
	assert.Equal(t, 1, s.Len())
}

func TestFind_MissingKey(t *testing.T) {
	s := New[entry]()
	s.FindOrInsert(big.NewInt(1), entry{key: big.NewInt(1)})

	_, found := s.Find(big.NewInt(2))
	assert.False(t, found)
}

func TestInsert_KeepsSortedOrder(t *testing.T) {
	s := New[entry]()
	keys := []int64{10, 3, 7, 1, 9}
	for _, k := range keys {
		s.Insert(entry{key: big.NewInt(k)})
	}

	assert.Equal(t, len(keys), s.Len())
	for _, k := range keys {
		_, found := s.Find(big.NewInt(k))
		assert.True(t, found)
	}
}

func TestClear_EmptiesSet(t *testing.T) {
	s := New[entry]()
	s.Insert(entry{key: big.NewInt(1)})
	s.Insert(entry{key: big.NewInt(2)})

	s.Clear()
	assert.Equal(t, 0, s.Len())
}
