// Package vocab maps the distinct words of one side of a corpus to
// dense uint32 ids.
package vocab

// Vocab is the mapping between words and ids. Ids are assigned in the
// order words are first encountered, so building the same corpus twice
// yields the same ids. A Vocab is not modified after Build returns.
type Vocab struct {
	id2str []string
	str2id map[string]uint32
}

// Build collects the distinct words of sentences.
func Build(sentences [][]string) *Vocab {
	v := &Vocab{str2id: make(map[string]uint32)}
	for _, words := range sentences {
		for _, w := range words {
			if _, ok := v.str2id[w]; ok {
				continue
			}
			v.str2id[w] = uint32(len(v.id2str))
			v.id2str = append(v.id2str, w)
		}
	}
	return v
}

// FromWords builds a vocabulary whose ids follow the order of words.
// It returns false if words contains duplicates.
func FromWords(words []string) (*Vocab, bool) {
	v := Build([][]string{words})
	return v, v.Size() == uint32(len(words))
}

// number of distinct words
func (v *Vocab) Size() uint32 {
	return uint32(len(v.id2str))
}

// ID looks up the id of word w.
func (v *Vocab) ID(w string) (uint32, bool) {
	id, ok := v.str2id[w]
	return id, ok
}

// Word returns the word with the given id; id must be below Size.
func (v *Vocab) Word(id uint32) string {
	return v.id2str[id]
}

// Words returns the words in id order.
func (v *Vocab) Words() []string {
	words := make([]string, len(v.id2str))
	copy(words, v.id2str)
	return words
}

// Encode resolves every token of a sentence to its id. Unknown tokens
// are dropped.
func (v *Vocab) Encode(tokens []string) []uint32 {
	ids := make([]uint32, 0, len(tokens))
	for _, t := range tokens {
		if id, ok := v.str2id[t]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
