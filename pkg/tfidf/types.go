package tfidf

// Document is one searchable item in the ranking corpus. Text is
// expected to be the lower-cased concatenation of whatever fields the
// caller considers searchable.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Match pairs a document ID with its cosine similarity to the query.
// In fallback mode Score carries no numeric meaning and is left at 0.
type Match struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// RankResult is the outcome of one ranking pass. Fallback reports
// whether substring matching was used instead of vector similarity.
type RankResult struct {
	Matches  []Match `json:"matches"`
	Fallback bool    `json:"fallback"`
}

type IEngine interface {
	Rank(query string, docs []Document, limit int) RankResult
}
