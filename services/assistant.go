package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant-order-api/models"
)

// AssistantClient talks to an Ollama-compatible chat endpoint. It holds no
// storage handles and performs no writes; a failed or timed-out call only
// fails the request.
type AssistantClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewAssistantClient(baseURL, model string, timeout time.Duration) *AssistantClient {
	return &AssistantClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Chat sends the prompt and returns the model's reply text.
func (c *AssistantClient) Chat(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", upstreamError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", upstreamError(fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, c.baseURL))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", upstreamError(err.Error())
	}
	return decoded.Message.Content, nil
}

func upstreamError(details string) *Error {
	return newError(KindUpstreamFailure,
		"LLM call failed (Ollama). Check that Ollama is running, the URL, and the model name.").
		withField("details", details)
}

// BuildAssistantPrompt formats the menu and the user's message into the
// prompt sent to the model.
func BuildAssistantPrompt(dishes []models.Dish, role models.UserRole, userMessage string) string {
	menuLines := make([]string, 0, len(dishes))
	for _, d := range dishes {
		vipTag := ""
		if d.IsVipOnly {
			vipTag = " (VIP only)"
		}
		menuLines = append(menuLines, fmt.Sprintf("- %s%s: $%s — %s", d.Name, vipTag, d.Price.StringFixed(2), d.Description))
	}
	menuText := "No dishes available."
	if len(menuLines) > 0 {
		menuText = strings.Join(menuLines, "\n")
	}

	return fmt.Sprintf(`You are an AI assistant for a restaurant ordering system.
You see the following menu (including VIP-only dishes):

%s

The user has the following role: %s.
If the user is not 'vip', do NOT recommend VIP-only dishes.

The user says:
"""%s"""

Based on the menu and their role, recommend 2-5 dishes that fit their request.
Explain your reasoning in a friendly way, and clearly mention dish names and prices
so the frontend can show them. Keep the answer concise.
`, menuText, role, userMessage)
}
