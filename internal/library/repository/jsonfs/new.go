package jsonfs

import (
	"context"
	"fmt"
	"sort"

	"research-chatbot/internal/library"
	"research-chatbot/pkg/log"
)

// File names expected under the resources directory.
const (
	fileVocabulary = "keywords.json"
	fileArticles   = "articlesName_PMC.json"
	fileClusters   = "clustersPMC.json"
	fileUnigrams   = "unigramKeywords.json"
	fileBigrams    = "bigramKeywords.json"
)

// implRepository serves article and cluster recommendations from JSON
// resource files loaded once at startup.
type implRepository struct {
	l log.Logger

	vocabulary []string            // sorted restricted vocabulary
	pmcToTitle map[string]string   // PMC ID -> article title
	clusterPMC map[string][]string // cluster ID -> PMC IDs

	clusterKeywords   map[string]map[string]struct{} // cluster ID -> keyword set
	keywordToClusters map[string][]string            // keyword -> sorted cluster IDs
}

var _ library.Repository = (*implRepository)(nil)

// New loads the index from dir and returns a ready repository.
func New(dir string, l log.Logger) (*implRepository, error) {
	repo := &implRepository{l: l}

	if err := repo.load(dir); err != nil {
		return nil, fmt.Errorf("jsonfs: %w", err)
	}

	totalArticles := 0
	for _, pmcs := range repo.clusterPMC {
		totalArticles += len(pmcs)
	}

	ctx := context.Background()
	l.Infof(ctx, "Library index loaded: %d clusters, %d articles, %d unique keywords, %d vocabulary terms",
		len(repo.clusterPMC), totalArticles, len(repo.keywordToClusters), len(repo.vocabulary))

	return repo, nil
}

// Vocabulary returns the restricted keyword vocabulary, sorted.
func (r *implRepository) Vocabulary() []string {
	out := make([]string, len(r.vocabulary))
	copy(out, r.vocabulary)
	return out
}

// sortedKeys returns map keys in deterministic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
