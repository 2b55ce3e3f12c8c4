package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Raphaon/LoveLanguage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestions = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-15",
  "questions": [
    {
      "id": "q1",
      "text": "Question active",
      "order": 1,
      "active": true,
      "options": [
        {"id": "q1-a", "label": "A", "text": "Un moment ensemble", "language_code": "MQ"},
        {"id": "q1-b", "label": "B", "text": "Un coup de main", "language_code": "SR"},
        {"id": "q1-c", "label": "C", "text": "Un mot gentil", "language_code": "PQ"}
      ]
    },
    {
      "id": "q2",
      "text": "Question retirée",
      "order": 2,
      "active": false,
      "options": [
        {"id": "q2-a", "label": "A", "text": "Un cadeau", "language_code": "CD"},
        {"id": "q2-b", "label": "B", "text": "Un câlin", "language_code": "TP"},
        {"id": "q2-c", "label": "C", "text": "Du temps", "language_code": "MQ"}
      ]
    }
  ]
}`

const validGestures = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-15",
  "gestures": [
    {
      "id": "g1",
      "title": "Soirée cinéma",
      "description": "Un film ensemble, téléphones éteints.",
      "language_code": "MQ",
      "relationship_types": ["en_couple", "marie"],
      "category": "moment"
    }
  ]
}`

const validConversations = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-15",
  "questions": [
    {"id": "c1", "text": "Quel était ton jeu préféré enfant ?", "theme": "enfance", "depth": "leger"}
  ]
}`

func writeContentDir(t *testing.T, questions, gestures, conversations string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.json"), []byte(questions), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gestures.json"), []byte(gestures), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conversation-questions.json"), []byte(conversations), 0o644))
	return dir
}

func TestLoadFromDirectory(t *testing.T) {
	dir := writeContentDir(t, validQuestions, validGestures, validConversations)
	loader := NewLoader(Options{Dir: dir})
	ctx := context.Background()

	questions, err := loader.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 1, "inactive questions are filtered out")
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, models.SourceStatic, questions[0].Source)

	gestures, err := loader.Gestures(ctx)
	require.NoError(t, err)
	require.Len(t, gestures, 1)
	assert.Equal(t, models.CodeMQ, gestures[0].LanguageCode)

	conversations, err := loader.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, models.ThemeEnfance, conversations[0].Theme)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing version",
			body: `{"lastUpdated": "2026-08-15", "questions": []}`,
		},
		{
			name: "too few options",
			body: `{
			  "version": "1.0.0",
			  "lastUpdated": "2026-08-15",
			  "questions": [
			    {"id": "q1", "text": "t", "order": 1, "active": true, "options": [
			      {"id": "a", "label": "A", "text": "x", "language_code": "MQ"},
			      {"id": "b", "label": "B", "text": "y", "language_code": "SR"}
			    ]}
			  ]
			}`,
		},
		{
			name: "unknown language code",
			body: `{
			  "version": "1.0.0",
			  "lastUpdated": "2026-08-15",
			  "questions": [
			    {"id": "q1", "text": "t", "order": 1, "active": true, "options": [
			      {"id": "a", "label": "A", "text": "x", "language_code": "XX"},
			      {"id": "b", "label": "B", "text": "y", "language_code": "SR"},
			      {"id": "c", "label": "C", "text": "z", "language_code": "PQ"}
			    ]}
			  ]
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeContentDir(t, tt.body, validGestures, validConversations)
			loader := NewLoader(Options{Dir: dir})

			_, err := loader.Questions(context.Background())
			require.Error(t, err)
		})
	}
}

func TestLoadFromHTTPCachesOnce(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		require.Equal(t, "/questions.json", r.URL.Path)
		w.Write([]byte(validQuestions))
	}))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			questions, err := loader.Questions(ctx)
			assert.NoError(t, err)
			assert.Len(t, questions, 1)
		}()
	}
	wg.Wait()

	_, err := loader.Questions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "the bank is fetched once per process")
}

func TestLoadHTTPClientErrorNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL, RetryMax: 3})
	_, err := loader.Questions(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "4xx must not be retried")
}

func TestLoadHTTPServerErrorRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(validQuestions))
	}))
	defer server.Close()

	loader := NewLoader(Options{BaseURL: server.URL, RetryMax: 2})
	questions, err := loader.Questions(context.Background())
	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(2))
}

func TestLoadWithoutSource(t *testing.T) {
	loader := NewLoader(Options{})
	_, err := loader.Questions(context.Background())
	require.Error(t, err)
}
