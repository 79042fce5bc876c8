package jsonfs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// load reads every resource file and builds the inverted keyword index.
func (r *implRepository) load(dir string) error {
	if err := r.loadVocabulary(filepath.Join(dir, fileVocabulary)); err != nil {
		return err
	}
	if err := r.loadArticles(filepath.Join(dir, fileArticles)); err != nil {
		return err
	}
	if err := r.loadClusters(filepath.Join(dir, fileClusters)); err != nil {
		return err
	}

	r.clusterKeywords = make(map[string]map[string]struct{})
	if err := r.loadClusterKeywords(filepath.Join(dir, fileUnigrams)); err != nil {
		return err
	}
	if err := r.loadClusterKeywords(filepath.Join(dir, fileBigrams)); err != nil {
		return err
	}

	r.buildKeywordIndex()
	return nil
}

// loadVocabulary reads keywords.json, accepting either {"keywords": [...]}
// or a plain array.
func (r *implRepository) loadVocabulary(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read vocabulary: %w", err)
	}

	var wrapped struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Keywords) > 0 {
		r.vocabulary = normalizeTerms(wrapped.Keywords)
		return nil
	}

	var plain []string
	if err := json.Unmarshal(raw, &plain); err != nil {
		return fmt.Errorf("parse vocabulary: %w", err)
	}
	r.vocabulary = normalizeTerms(plain)
	return nil
}

// loadArticles reads articlesName_PMC.json: {"articles": {"PMC123": "title"}}.
func (r *implRepository) loadArticles(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read articles: %w", err)
	}

	var wrapped struct {
		Articles map[string]string `json:"articles"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return fmt.Errorf("parse articles: %w", err)
	}

	r.pmcToTitle = wrapped.Articles
	if r.pmcToTitle == nil {
		r.pmcToTitle = map[string]string{}
	}
	return nil
}

// loadClusters reads clustersPMC.json: {"clusters": {"0": ["PMC123", ...]}}.
func (r *implRepository) loadClusters(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read clusters: %w", err)
	}

	var wrapped struct {
		Clusters map[string][]string `json:"clusters"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return fmt.Errorf("parse clusters: %w", err)
	}

	r.clusterPMC = wrapped.Clusters
	if r.clusterPMC == nil {
		r.clusterPMC = map[string][]string{}
	}
	return nil
}

// loadClusterKeywords merges a cluster->keywords file (unigrams or bigrams)
// into the accumulated keyword sets.
func (r *implRepository) loadClusterKeywords(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read cluster keywords %s: %w", filepath.Base(path), err)
	}

	var perCluster map[string][]string
	if err := json.Unmarshal(raw, &perCluster); err != nil {
		return fmt.Errorf("parse cluster keywords %s: %w", filepath.Base(path), err)
	}

	for clusterID, keywords := range perCluster {
		set, ok := r.clusterKeywords[clusterID]
		if !ok {
			set = make(map[string]struct{})
			r.clusterKeywords[clusterID] = set
		}
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				set[kw] = struct{}{}
			}
		}
	}
	return nil
}

// buildKeywordIndex builds keyword -> sorted cluster IDs.
func (r *implRepository) buildKeywordIndex() {
	index := make(map[string]map[string]struct{})
	for clusterID, keywords := range r.clusterKeywords {
		for kw := range keywords {
			clusters, ok := index[kw]
			if !ok {
				clusters = make(map[string]struct{})
				index[kw] = clusters
			}
			clusters[clusterID] = struct{}{}
		}
	}

	r.keywordToClusters = make(map[string][]string, len(index))
	for kw, clusters := range index {
		r.keywordToClusters[kw] = sortedKeys(clusters)
	}
}

// normalizeTerms lowercases, trims, dedupes, and sorts.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
