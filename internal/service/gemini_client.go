package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/samber/mo"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"transparencyai/internal/config"
	"transparencyai/internal/model"
)

// maxLLMItems caps how many generated questions are read from one response
const maxLLMItems = 8

// questionListSchema describes the elements we accept from the model. Only the
// first maxLLMItems elements are validated against it.
const questionListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "question_text": {"type": ["string", "null"]},
      "question_type": {"type": ["string", "null"]},
      "metadata": {"type": ["object", "null"]}
    }
  }
}`

var compiledQuestionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(questionListSchema), &doc); err != nil {
		return nil, eris.Wrap(err, "parse question schema")
	}
	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-list.json"
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, eris.Wrap(err, "add question schema")
	}
	return c.Compile(schemaURL)
})

// QuestionGenerator produces follow-up questions from a remote model. A
// failed result carries the reason; callers fall back on it.
type QuestionGenerator interface {
	Generate(ctx context.Context, req model.QuestionRequest) mo.Result[[]model.QuestionItem]
}

// GeminiClient generates questions via the Gemini generateContent API
type GeminiClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(cfg *config.AIConfig) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.GeminiTimeout
	}
	return &GeminiClient{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Generate issues one generateContent call and parses the returned question
// list. It never retries.
func (c *GeminiClient) Generate(ctx context.Context, req model.QuestionRequest) mo.Result[[]model.QuestionItem] {
	ctx, cancel := context.WithTimeout(ctx, c.client.Timeout)
	defer cancel()

	text, err := c.callGemini(ctx, BuildQuestionPrompt(req))
	if err != nil {
		return mo.Err[[]model.QuestionItem](err)
	}

	items, err := parseQuestionItems(text)
	if err != nil {
		return mo.Err[[]model.QuestionItem](err)
	}
	return mo.Ok(items)
}

// callGemini makes a request to the Gemini API and returns the text of the
// first candidate's first part, or "" when there is none.
func (c *GeminiClient) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.4,
			"topP":             0.9,
			"topK":             40,
			"maxOutputTokens":  512,
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", eris.Wrap(err, "marshal gemini request")
	}

	endpoint := fmt.Sprintf("%s?key=%s", c.config.ModelEndpoint(), url.QueryEscape(c.config.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", &ErrProviderUnavailable{Err: eris.Wrap(err, "build gemini request")}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ErrProviderUnavailable{Err: eris.Wrap(err, "call gemini")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ErrProviderUnavailable{Err: eris.Wrap(err, "read gemini response")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ErrProviderUnavailable{StatusCode: resp.StatusCode, Err: eris.New(http.StatusText(resp.StatusCode))}
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &ErrInvalidResponse{Content: body, Err: eris.Wrap(err, "decode gemini envelope")}
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}
	return "", nil
}

// parseQuestionItems decodes the model's JSON payload. Text that is empty, not
// JSON, or not a list yields no items; list elements of the wrong shape are an
// error.
func parseQuestionItems(text string) ([]model.QuestionItem, error) {
	if text == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, nil
	}
	list, ok := parsed.([]any)
	if !ok {
		return nil, nil
	}
	if len(list) > maxLLMItems {
		list = list[:maxLLMItems]
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return nil, eris.Wrap(err, "compile question schema")
	}
	if err := schema.Validate(list); err != nil {
		return nil, &ErrInvalidResponse{Content: json.RawMessage(text), Err: err}
	}

	items := make([]model.QuestionItem, 0, len(list))
	for _, el := range list {
		obj, _ := el.(map[string]any)
		questionText, _ := obj["question_text"].(string)
		questionType, _ := obj["question_type"].(string)
		metadata, _ := obj["metadata"].(map[string]any)
		items = append(items, model.QuestionItem{
			QuestionText: questionText,
			QuestionType: model.ParseQuestionType(questionType),
			Metadata:     metadata,
		})
	}
	return items, nil
}
