package usecase

import (
	"context"
	"errors"
	"testing"

	"research-chatbot/internal/chatbot"
	"research-chatbot/internal/library"
	"research-chatbot/internal/model"
	"research-chatbot/internal/router"
)

func routed(intent router.Intent) router.RouterOutput {
	return router.RouterOutput{Intent: intent, Confidence: 90}
}

func newUseCase(rt *fakeRouter, ex *fakeExtractor, lib *fakeLibrary, llm *fakeLLM) *implUseCase {
	if lib == nil {
		lib = &fakeLibrary{}
	}
	if llm == nil {
		llm = &fakeLLM{text: "respuesta"}
	}
	return New(&mockLogger{}, llm, rt, ex, lib)
}

func TestHandleMessage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", RequestID: "r1"}

	t.Run("Empty Input", func(t *testing.T) {
		uc := newUseCase(&fakeRouter{}, &fakeExtractor{}, nil, nil)

		_, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "   "})
		if !errors.Is(err, chatbot.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Classification Error Propagates", func(t *testing.T) {
		uc := newUseCase(&fakeRouter{err: errors.New("provider down")}, &fakeExtractor{}, nil, nil)

		if _, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "hola"}); err == nil {
			t.Errorf("expected error when classification fails")
		}
	})

	t.Run("Search Articles", func(t *testing.T) {
		lib := &fakeLibrary{articles: []library.Article{
			{PMCID: "PMC1", ClusterID: "0", Title: "CRISPR in plants", RelevanceScore: 0.9},
		}}
		ex := &fakeExtractor{keywords: []string{"crispr"}}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentSearchArticles)}, ex, lib, nil)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "necesito artículos sobre CRISPR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionSearchArticles {
			t.Errorf("expected search_articles, got %s", out.Action)
		}
		if len(out.Keywords) == 0 {
			t.Errorf("search action must carry keywords")
		}
		if out.Message != MessageArticlesFound {
			t.Errorf("unexpected message %q", out.Message)
		}
		data, ok := out.Data.(chatbot.ArticleSearchData)
		if !ok {
			t.Fatalf("expected ArticleSearchData payload, got %T", out.Data)
		}
		if len(data.Articles) != 1 || data.Articles[0].PMCID != "PMC1" {
			t.Errorf("unexpected articles: %v", data.Articles)
		}
	})

	t.Run("Search With No Matching Articles", func(t *testing.T) {
		ex := &fakeExtractor{keywords: []string{"crispr"}}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentSearchArticles)}, ex, &fakeLibrary{}, nil)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "artículos sobre crispr"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionSearchArticles {
			t.Errorf("expected search_articles, got %s", out.Action)
		}
		if out.Message != MessageNoArticles {
			t.Errorf("expected no-articles message, got %q", out.Message)
		}
		if len(out.Keywords) == 0 {
			t.Errorf("keywords must survive even with no article hits")
		}
	})

	t.Run("Search Without Keywords Downgrades To Chat", func(t *testing.T) {
		uc := newUseCase(&fakeRouter{out: routed(router.IntentSearchArticles)}, &fakeExtractor{}, nil, nil)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "dame artículos de algo rarísimo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionChat {
			t.Errorf("expected downgrade to chat, got %s", out.Action)
		}
		if out.Keywords != nil {
			t.Errorf("chat action must not carry keywords, got %v", out.Keywords)
		}
		if out.Message != MessageRephrase {
			t.Errorf("unexpected message %q", out.Message)
		}
	})

	t.Run("Recommend Themes", func(t *testing.T) {
		lib := &fakeLibrary{clusters: []library.ClusterMatch{
			{ClusterID: "7", RelevanceScore: 0.5, MatchedKeywords: []string{"blockchain"}, TotalKeywordsInCluster: 12},
		}}
		ex := &fakeExtractor{keywords: []string{"blockchain"}}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentRecommendThemes)}, ex, lib, nil)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "temas relacionados con blockchain"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionRecommendThemes {
			t.Errorf("expected recommend_themes, got %s", out.Action)
		}
		data, ok := out.Data.(chatbot.ThemeRecommendationData)
		if !ok {
			t.Fatalf("expected ThemeRecommendationData payload, got %T", out.Data)
		}
		if len(data.RecommendedClusters) != 1 || data.RecommendedClusters[0].ClusterID != "7" {
			t.Errorf("unexpected clusters: %v", data.RecommendedClusters)
		}
	})

	t.Run("Extraction Error Propagates", func(t *testing.T) {
		ex := &fakeExtractor{err: errors.New("provider down")}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentSearchArticles)}, ex, nil, nil)

		if _, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "artículos sobre dna"}); err == nil {
			t.Errorf("expected error when extraction fails")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		llm := &fakeLLM{text: "El aprendizaje por refuerzo es..."}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentExplain)}, &fakeExtractor{}, nil, llm)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "explícame qué es reinforcement learning"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionExplain {
			t.Errorf("expected explain, got %s", out.Action)
		}
		if out.Message == "" {
			t.Errorf("explain must return a non-empty message")
		}
		if out.Keywords != nil {
			t.Errorf("explain must not carry keywords")
		}
		if llm.lastReq.SystemInstruction != PromptExplainSystem {
			t.Errorf("explain must use its own system prompt")
		}
	})

	t.Run("Summarize", func(t *testing.T) {
		llm := &fakeLLM{text: "Resumen: ..."}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentSummarize)}, &fakeExtractor{}, nil, llm)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "resume este abstract: ..."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionSummarize {
			t.Errorf("expected summarize, got %s", out.Action)
		}
	})

	t.Run("Generate Metrics Never Calls The Model", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("must not be called")}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentGenerateMetrics)}, &fakeExtractor{}, nil, llm)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "genera métricas de uso"})
		if err != nil {
			t.Fatalf("generate_metrics must never error: %v", err)
		}
		if out.Action != chatbot.ActionGenerateMetrics {
			t.Errorf("expected generate_metrics, got %s", out.Action)
		}
		if out.Message != MessageMetricsNotImplemented {
			t.Errorf("expected fixed message, got %q", out.Message)
		}
		if llm.calls != 0 {
			t.Errorf("generate_metrics must not call the model, got %d calls", llm.calls)
		}
	})

	t.Run("Conversation Uses The Model", func(t *testing.T) {
		llm := &fakeLLM{text: "¡Hola! Puedo buscar artículos científicos."}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentConversation)}, &fakeExtractor{}, nil, llm)

		out, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "hola, ¿qué puedes hacer?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != chatbot.ActionChat {
			t.Errorf("expected chat, got %s", out.Action)
		}
		if llm.calls != 1 {
			t.Errorf("expected 1 model call, got %d", llm.calls)
		}
	})

	t.Run("Empty Model Reply Is An Error", func(t *testing.T) {
		llm := &fakeLLM{text: "   "}
		uc := newUseCase(&fakeRouter{out: routed(router.IntentExplain)}, &fakeExtractor{}, nil, llm)

		_, err := uc.HandleMessage(ctx, sc, chatbot.ChatInput{UserInput: "explícame CRISPR"})
		if !errors.Is(err, chatbot.ErrEmptyReply) {
			t.Errorf("expected ErrEmptyReply, got %v", err)
		}
	})
}
