package topics

import (
	"slices"

	"github.com/james-bowman/sparse"
)

// Bow is one bag-of-words entry: a token id and its count in a document.
type Bow struct {
	ID    int `json:"id" yaml:"id"`
	Count int `json:"count" yaml:"count"`
}

// Dictionary maps tokens to dense integer ids.
type Dictionary struct {
	ids     map[string]int
	words   []string
	docFreq []int
}

// NewDictionary assigns ids to the tokens of docs in first-appearance order
// and records how many documents contain each token.
func NewDictionary(docs [][]string) *Dictionary {
	d := &Dictionary{ids: make(map[string]int)}
	for _, doc := range docs {
		seen := make(map[int]struct{}, len(doc))
		for _, w := range doc {
			id, ok := d.ids[w]
			if !ok {
				id = len(d.words)
				d.ids[w] = id
				d.words = append(d.words, w)
				d.docFreq = append(d.docFreq, 0)
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				d.docFreq[id]++
			}
		}
	}
	return d
}

// Len returns the vocabulary size.
func (d *Dictionary) Len() int { return len(d.words) }

// ID returns the id of word.
func (d *Dictionary) ID(word string) (int, bool) {
	id, ok := d.ids[word]
	return id, ok
}

// Word returns the token with the given id.
func (d *Dictionary) Word(id int) string { return d.words[id] }

// DocFreq returns the number of documents containing the token with id.
func (d *Dictionary) DocFreq(id int) int { return d.docFreq[id] }

// Doc2Bow converts doc into bag-of-words entries sorted by id. Unknown
// tokens are skipped.
func (d *Dictionary) Doc2Bow(doc []string) []Bow {
	counts := make(map[int]int, len(doc))
	for _, w := range doc {
		if id, ok := d.ids[w]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	bow := make([]Bow, 0, len(counts))
	for id, c := range counts {
		bow = append(bow, Bow{ID: id, Count: c})
	}
	slices.SortFunc(bow, func(a, b Bow) int { return a.ID - b.ID })
	return bow
}

// Matrix builds the term-document count matrix of corpus, with one row per
// token id and one column per document. Entries are laid out by row, then
// by document, so the same corpus always yields the same storage order.
func (d *Dictionary) Matrix(corpus [][]Bow) *sparse.CSR {
	rows := make([][]Bow, d.Len())
	nnz := 0
	for j, bow := range corpus {
		for _, e := range bow {
			rows[e.ID] = append(rows[e.ID], Bow{ID: j, Count: e.Count})
			nnz++
		}
	}

	indptr := make([]int, 0, d.Len()+1)
	ind := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	indptr = append(indptr, 0)
	for _, row := range rows {
		for _, e := range row {
			ind = append(ind, e.ID)
			data = append(data, float64(e.Count))
		}
		indptr = append(indptr, len(ind))
	}
	return sparse.NewCSR(d.Len(), len(corpus), indptr, ind, data)
}
