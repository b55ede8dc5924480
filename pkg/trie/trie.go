package trie

import (
	"unicode/utf8"

	prefixtrie "github.com/derekparker/trie"
	"golang.org/x/exp/slices"
)

// Trie prefix set buat autocomplete nama lokasi.
type Trie struct {
	t    *prefixtrie.Trie
	size int
}

func NewTrie() *Trie {
	return &Trie{t: prefixtrie.New()}
}

func (t *Trie) Clear() {
	t.t = prefixtrie.New()
	t.size = 0
}

// Len jumlah key unik.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) Add(key string) {
	if t.Contains(key) {
		return
	}
	t.t.Add(key, nil)
	t.size++
}

func (t *Trie) Contains(key string) bool {
	_, ok := t.t.Find(key)
	return ok
}

// KeysWithPrefix semua key yang diawali prefix, sorted.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	keys := []string{}
	keys = append(keys, t.t.PrefixSearch(prefix)...)
	slices.Sort(keys)
	return keys
}

// LongestPrefixOf key terpanjang di trie yang merupakan prefix dari s. "" kalau tidak ada.
// s dipotong per batas rune, byte utf-8 yang invalid dihitung 1 rune selebar 1 byte.
func (t *Trie) LongestPrefixOf(s string) string {
	longest := ""
	for end := 0; end < len(s); {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
		if t.Contains(s[:end]) {
			longest = s[:end]
		}
	}
	return longest
}
