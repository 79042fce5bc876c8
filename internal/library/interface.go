package library

// Repository provides keyword-based lookups over the article/cluster index.
// Implementations are read-only after construction and safe for concurrent use.
type Repository interface {
	// ArticlesByKeywords returns the most relevant articles for the given
	// keywords, ordered by relevance (descending), at most limit entries.
	ArticlesByKeywords(keywords []string, limit int) []Article

	// ClustersByKeywords returns the most relevant clusters for the given
	// keywords, ordered by relevance (descending), at most limit entries.
	ClustersByKeywords(keywords []string, limit int) []ClusterMatch

	// Vocabulary returns the restricted keyword vocabulary, sorted.
	Vocabulary() []string
}
