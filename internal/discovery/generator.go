package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"assembly-server/internal/domain"
)

// systemInstruction - промпт внешнему генератору. Формат ответа жестко
// зафиксирован: один JSON-объект, никакого markdown.
const systemInstruction = `You are the combination oracle of a factory-building game.
Given input item names and a modifier name, invent the single item that results.
Respond with ONLY a JSON object, no markdown, no prose:
{"name": string, "emoji": one emoji, "cashPerItem": positive number,
"type": "Ingredient" or "Modifier", "rarity": string, "category": string,
"complexity": integer 0-10, "description": one short sentence}
The result must feel like a plausible physical consequence of the combination.`

const (
	generatorTimeout = 10 * time.Second
	maxOutputTokens  = 256
	temperature      = 0.9
)

// CombinationRequest - тело запроса к внешнему генератору.
type CombinationRequest struct {
	Inputs   []string `json:"inputs"`
	Modifier string   `json:"modifier"`
}

// Client - HTTP-клиент внешнего генератора шаблонов.
// Endpoint и ключ берутся из окружения; без endpoint клиент не создается
// и резолвер работает только на локальном fallback.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClientFromEnv читает ASSEMBLY_GEN_ENDPOINT и ASSEMBLY_GEN_API_KEY.
// Возвращает nil, если endpoint не задан.
func NewClientFromEnv() *Client {
	endpoint := os.Getenv("ASSEMBLY_GEN_ENDPOINT")
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   os.Getenv("ASSEMBLY_GEN_API_KEY"),
		http:     &http.Client{Timeout: generatorTimeout},
	}
}

// NewClient создает клиент с явными параметрами (для тестов).
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: generatorTimeout},
	}
}

type generateBody struct {
	System      string             `json:"system"`
	Request     CombinationRequest `json:"request"`
	MaxTokens   int                `json:"maxTokens"`
	Temperature float64            `json:"temperature"`
}

// Generate запрашивает шаблон у внешнего генератора и строго валидирует
// ответ. Любая ошибка (сеть, статус, парсинг, валидация) отдается
// наверх - решение о fallback принимает резолвер.
func (c *Client) Generate(ctx context.Context, inputs []string, modifier string) (domain.ItemTemplate, error) {
	body, err := json.Marshal(generateBody{
		System:      systemInstruction,
		Request:     CombinationRequest{Inputs: inputs, Modifier: modifier},
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("failed to marshal generator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("failed to build generator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("generator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Тело читаем ограниченно, чтобы не тащить мегабайты в лог
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ItemTemplate{}, fmt.Errorf("generator returned status %d: %s", resp.StatusCode, snippet)
	}

	var tpl domain.ItemTemplate
	if err := json.NewDecoder(resp.Body).Decode(&tpl); err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("failed to decode generator response: %w", err)
	}

	if err := tpl.Validate(); err != nil {
		return domain.ItemTemplate{}, fmt.Errorf("generator produced invalid template: %w", err)
	}

	return tpl, nil
}
