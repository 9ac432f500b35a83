package tfidf

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultMaxFeatures = 5000

// Engine ranks documents against a query with TF-IDF weighted cosine
// similarity. The vector space is rebuilt per call, so an Engine is
// stateless and safe for concurrent use.
type Engine struct {
	log         *logrus.Logger
	stopWords   map[string]bool
	maxFeatures int
}

func NewEngine(log *logrus.Logger) IEngine {
	return &Engine{
		log:         log,
		stopWords:   englishStopWords,
		maxFeatures: defaultMaxFeatures,
	}
}

// Rank scores every document against the query and returns the top
// matches sorted by descending similarity. Zero-similarity documents
// are dropped. Ties keep the original document order.
//
// If the vocabulary collapses to nothing after stopword removal the
// engine degrades to substring matching instead of failing; the
// result is flagged with Fallback and its scores carry no meaning.
func (e *Engine) Rank(query string, docs []Document, limit int) RankResult {
	if len(docs) == 0 || strings.TrimSpace(query) == "" || limit <= 0 {
		return RankResult{}
	}

	docTokens := make([][]string, len(docs))
	for i, d := range docs {
		docTokens[i] = e.tokenize(d.Text)
	}
	queryTokens := e.tokenize(query)

	vocab := e.buildVocabulary(docTokens, queryTokens)
	if len(vocab) == 0 {
		e.log.WithFields(logrus.Fields{
			"query":     query,
			"documents": len(docs),
		}).Debug("Vocabulary is empty after stopword removal, falling back to substring matching")
		return RankResult{
			Matches:  e.substringMatch(query, docs, limit),
			Fallback: true,
		}
	}

	idf := e.inverseDocumentFrequency(vocab, docTokens, queryTokens)
	queryVec := e.vectorize(queryTokens, vocab, idf)

	type scoredDoc struct {
		idx   int
		score float64
	}

	var ranked []scoredDoc
	for i := range docs {
		score := dot(queryVec, e.vectorize(docTokens[i], vocab, idf))
		if score > 0 {
			ranked = append(ranked, scoredDoc{idx: i, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	matches := make([]Match, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, Match{ID: docs[r.idx].ID, Score: r.score})
	}

	return RankResult{Matches: matches}
}

// buildVocabulary collects every non-stopword term of the corpus
// (documents plus query) and keeps at most maxFeatures of them,
// preferring the highest total frequency, ties alphabetical.
func (e *Engine) buildVocabulary(docTokens [][]string, queryTokens []string) map[string]bool {
	counts := make(map[string]int)
	for _, tokens := range docTokens {
		for _, t := range tokens {
			counts[t]++
		}
	}
	for _, t := range queryTokens {
		counts[t]++
	}

	if len(counts) == 0 {
		return nil
	}

	vocab := make(map[string]bool, len(counts))
	if len(counts) <= e.maxFeatures {
		for term := range counts {
			vocab[term] = true
		}
		return vocab
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	for _, term := range terms[:e.maxFeatures] {
		vocab[term] = true
	}
	return vocab
}

// inverseDocumentFrequency computes smoothed IDF weights over the
// corpus, with the query counted as one more document:
// idf = ln((1+n)/(1+df)) + 1.
func (e *Engine) inverseDocumentFrequency(vocab map[string]bool, docTokens [][]string, queryTokens []string) map[string]float64 {
	df := make(map[string]int, len(vocab))

	countOnce := func(tokens []string) {
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if vocab[t] && !seen[t] {
				df[t]++
				seen[t] = true
			}
		}
	}

	for _, tokens := range docTokens {
		countOnce(tokens)
	}
	countOnce(queryTokens)

	n := float64(len(docTokens) + 1)
	idf := make(map[string]float64, len(vocab))
	for term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return idf
}

// vectorize builds the L2-normalized TF-IDF vector for one token list.
func (e *Engine) vectorize(tokens []string, vocab map[string]bool, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64)
	for _, t := range tokens {
		if vocab[t] {
			vec[t] += 1
		}
	}

	var sumSquares float64
	for term, tf := range vec {
		w := tf * idf[term]
		vec[term] = w
		sumSquares += w * w
	}

	if sumSquares == 0 {
		return vec
	}

	length := math.Sqrt(sumSquares)
	for term := range vec {
		vec[term] /= length
	}
	return vec
}

// dot multiplies two sparse vectors. Both sides are already
// normalized, so this is the cosine similarity.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}

// substringMatch is the degraded mode: boolean relevance by substring
// containment, original document order, no scores.
func (e *Engine) substringMatch(query string, docs []Document, limit int) []Match {
	queryLower := strings.ToLower(query)

	var matches []Match
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Text), queryLower) {
			matches = append(matches, Match{ID: d.ID})
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// tokenize lower-cases, strips diacritics and splits on anything that
// is not a letter or digit, dropping single-rune tokens and stopwords.
func (e *Engine) tokenize(text string) []string {
	cleaned := e.cleanText(text)

	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 || e.stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func (e *Engine) cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
