package functional

import (
	"math/rand"

	trie "github.com/datnguyenzzz/nogodb/lib/go-trie-index"
)

func generateKey(n int) trie.Key {
	k := make(trie.Key, n)
	for i := range k {
		k[i] = byte('a' + rand.Intn(26))
	}
	return k
}
