package service

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "pdf-chat/internal/errors"
	"pdf-chat/internal/llm"
	"pdf-chat/internal/model"
)

const (
	// documentOnlyInstruction is appended to the tone in the system message.
	documentOnlyInstruction = "Answer only based on the uploaded document."
	documentLabel           = "Document:"
	questionLabel           = "Question: "
)

// AnswerGenerator turns a question about the loaded document into one
// chat-completion request.
type AnswerGenerator struct {
	llm   llm.LLMProvider
	model string
}

func NewAnswerGenerator(provider llm.LLMProvider, modelName string) *AnswerGenerator {
	return &AnswerGenerator{llm: provider, model: modelName}
}

// Model returns the completion model identifier used for every request.
func (g *AnswerGenerator) Model() string { return g.model }

// BuildMessages assembles the outbound message list: the system instruction,
// the already truncated history unchanged, then the document and question as
// the final user message.
func BuildMessages(documentText, tone string, history []model.Message, query string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    string(model.RoleSystem),
		Content: tone + "\n" + documentOnlyInstruction,
	})
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, llm.Message{
		Role:    string(model.RoleUser),
		Content: documentLabel + "\n" + documentText + "\n\n" + questionLabel + query,
	})
	return messages
}

// Generate returns the model's reply verbatim. It fails with
// ErrDocumentMissing before doing anything else when no document is loaded;
// completion failures come back wrapped in ErrRemoteCall.
func (g *AnswerGenerator) Generate(ctx context.Context, documentText, tone string, history []model.Message, query string) (string, error) {
	if documentText == "" {
		return "", app_errors.ErrDocumentMissing
	}

	req := &llm.GenerateRequest{
		Model:    g.model,
		Messages: BuildMessages(documentText, tone, history, query),
	}
	slog.DebugContext(ctx, "Requesting answer", "model", g.model, "history_messages", len(history))

	resp, err := g.llm.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("could not generate answer: %w", err)
	}
	return resp.Response, nil
}
