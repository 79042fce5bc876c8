package jsonfs

import (
	"math"
	"sort"
	"strings"

	"research-chatbot/internal/library"
)

// MaxQueryKeywords caps how many input keywords participate in scoring.
const MaxQueryKeywords = 5

// clusterScore is the intermediate per-cluster match state.
type clusterScore struct {
	clusterID string
	matched   []string
}

// ArticlesByKeywords scores clusters by how many query keywords they match,
// then scores each article in a matching cluster with a title boost:
//
//	final = clusterScore * (0.8 + 0.2*titleBoost)
//
// where clusterScore is matched/len(keywords) and titleBoost is the share of
// matched keywords that also appear in the article title.
func (r *implRepository) ArticlesByKeywords(keywords []string, limit int) []library.Article {
	keywords = normalizeQuery(keywords)
	if len(keywords) == 0 || limit <= 0 {
		return nil
	}

	matches := r.matchClusters(keywords)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	articles := make([]library.Article, 0, limit*2)
	for _, m := range matches {
		cScore := float64(len(m.matched)) / float64(len(keywords))
		for _, pmcID := range r.clusterPMC[m.clusterID] {
			if _, dup := seen[pmcID]; dup {
				continue
			}
			seen[pmcID] = struct{}{}

			title, ok := r.pmcToTitle[pmcID]
			if !ok || title == "" {
				continue
			}

			boost := titleBoost(title, m.matched)
			articles = append(articles, library.Article{
				PMCID:           pmcID,
				ClusterID:       m.clusterID,
				Title:           title,
				RelevanceScore:  round4(cScore * (0.8 + 0.2*boost)),
				MatchedKeywords: m.matched,
			})
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].RelevanceScore > articles[j].RelevanceScore
	})
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

// ClustersByKeywords returns clusters ranked by the share of query keywords
// they match.
func (r *implRepository) ClustersByKeywords(keywords []string, limit int) []library.ClusterMatch {
	keywords = normalizeQuery(keywords)
	if len(keywords) == 0 || limit <= 0 {
		return nil
	}

	matches := r.matchClusters(keywords)
	if len(matches) == 0 {
		return nil
	}

	out := make([]library.ClusterMatch, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, library.ClusterMatch{
			ClusterID:              m.clusterID,
			RelevanceScore:         round4(float64(len(m.matched)) / float64(len(keywords))),
			MatchedKeywords:        m.matched,
			TotalKeywordsInCluster: len(r.clusterKeywords[m.clusterID]),
		})
	}
	return out
}

// matchClusters returns clusters that match at least one keyword, ordered by
// matched count descending, then cluster ID for determinism. Matched keyword
// lists come back sorted.
func (r *implRepository) matchClusters(keywords []string) []clusterScore {
	matchedByCluster := make(map[string][]string)
	for _, kw := range keywords {
		for _, clusterID := range r.keywordToClusters[kw] {
			matchedByCluster[clusterID] = append(matchedByCluster[clusterID], kw)
		}
	}
	if len(matchedByCluster) == 0 {
		return nil
	}

	matches := make([]clusterScore, 0, len(matchedByCluster))
	for _, clusterID := range sortedKeys(matchedByCluster) {
		matched := matchedByCluster[clusterID]
		sort.Strings(matched)
		matches = append(matches, clusterScore{clusterID: clusterID, matched: matched})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].matched) > len(matches[j].matched)
	})
	return matches
}

// titleBoost is the fraction of matched keywords found in the title.
func titleBoost(title string, matched []string) float64 {
	if len(matched) == 0 {
		return 0
	}
	title = strings.ToLower(title)
	hits := 0
	for _, kw := range matched {
		if strings.Contains(title, kw) {
			hits++
		}
	}
	return float64(hits) / float64(len(matched))
}

// normalizeQuery lowercases, trims, dedupes, and caps the query keywords.
func normalizeQuery(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
		if len(out) == MaxQueryKeywords {
			break
		}
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
