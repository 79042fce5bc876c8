package library

// Article is a recommended article from the index.
type Article struct {
	PMCID           string   `json:"pmc_id"`
	ClusterID       string   `json:"cluster_id"`
	Title           string   `json:"title"`
	RelevanceScore  float64  `json:"relevance_score"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// ClusterMatch is a recommended research cluster.
type ClusterMatch struct {
	ClusterID              string   `json:"cluster_id"`
	RelevanceScore         float64  `json:"relevance_score"`
	MatchedKeywords        []string `json:"matched_keywords"`
	TotalKeywordsInCluster int      `json:"total_keywords_in_cluster"`
}
