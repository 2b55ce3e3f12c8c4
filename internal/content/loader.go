package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/singleflight"
)

const (
	questionsFile     = "questions.json"
	gesturesFile      = "gestures.json"
	conversationsFile = "conversation-questions.json"
)

// Loader fetches the static content banks either from a local directory
// or from an HTTP base URL. Each bank is fetched at most once per process
// lifetime; concurrent callers share a single in-flight load. Remote
// fetches retry transient and server-class failures with exponential
// backoff, client-class failures propagate immediately.
type Loader struct {
	dir     string
	baseURL string
	client  *retryablehttp.Client
	group   singleflight.Group

	questions     []models.Question
	gestures      []models.Gesture
	conversations []models.ConversationQuestion
}

// Options configures a Loader. Exactly one of Dir or BaseURL should be
// set; Dir wins when both are.
type Options struct {
	Dir      string
	BaseURL  string
	RetryMax int
}

func NewLoader(opts Options) *Loader {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	if client.RetryMax <= 0 {
		client.RetryMax = 3
	}
	client.Logger = nil

	return &Loader{
		dir:     opts.Dir,
		baseURL: opts.BaseURL,
		client:  client,
	}
}

// Questions returns the active static questions, loading and validating
// the bank on first use.
func (l *Loader) Questions(ctx context.Context) ([]models.Question, error) {
	v, err, _ := l.group.Do(questionsFile, func() (interface{}, error) {
		if l.questions != nil {
			return l.questions, nil
		}

		raw, err := l.fetch(ctx, questionsFile)
		if err != nil {
			return nil, err
		}
		if err := validate(questionsFile, raw); err != nil {
			return nil, fmt.Errorf("invalid questions content: %w", err)
		}

		var bank models.QuestionBank
		if err := json.Unmarshal(raw, &bank); err != nil {
			return nil, fmt.Errorf("parse questions content: %w", err)
		}

		active := make([]models.Question, 0, len(bank.Questions))
		for _, q := range bank.Questions {
			if !q.Active {
				continue
			}
			q.Source = models.SourceStatic
			active = append(active, q)
		}
		l.questions = active
		return l.questions, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Question), nil
}

// Gestures returns the gesture bank, loading it on first use.
func (l *Loader) Gestures(ctx context.Context) ([]models.Gesture, error) {
	v, err, _ := l.group.Do(gesturesFile, func() (interface{}, error) {
		if l.gestures != nil {
			return l.gestures, nil
		}

		raw, err := l.fetch(ctx, gesturesFile)
		if err != nil {
			return nil, err
		}
		if err := validate(gesturesFile, raw); err != nil {
			return nil, fmt.Errorf("invalid gestures content: %w", err)
		}

		var bank models.GestureBank
		if err := json.Unmarshal(raw, &bank); err != nil {
			return nil, fmt.Errorf("parse gestures content: %w", err)
		}
		l.gestures = bank.Gestures
		return l.gestures, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Gesture), nil
}

// Conversations returns the conversation prompts, loading them on first use.
func (l *Loader) Conversations(ctx context.Context) ([]models.ConversationQuestion, error) {
	v, err, _ := l.group.Do(conversationsFile, func() (interface{}, error) {
		if l.conversations != nil {
			return l.conversations, nil
		}

		raw, err := l.fetch(ctx, conversationsFile)
		if err != nil {
			return nil, err
		}
		if err := validate(conversationsFile, raw); err != nil {
			return nil, fmt.Errorf("invalid conversation content: %w", err)
		}

		var bank models.ConversationBank
		if err := json.Unmarshal(raw, &bank); err != nil {
			return nil, fmt.Errorf("parse conversation content: %w", err)
		}
		l.conversations = bank.Questions
		return l.conversations, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.ConversationQuestion), nil
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	if l.dir != "" {
		raw, err := os.ReadFile(filepath.Join(l.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read content file %s: %w", name, err)
		}
		return raw, nil
	}
	if l.baseURL == "" {
		return nil, errors.New("no content source configured")
	}

	target, err := url.JoinPath(l.baseURL, name)
	if err != nil {
		return nil, fmt.Errorf("build content url for %s: %w", name, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w", name, err)
	}
	return raw, nil
}

// decodeInstance parses raw for schema validation.
func decodeInstance(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
