package service

import (
	"context"
	"fmt"
	"strings"

	"finance-ai-advisor/internal/domain"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/oauth2/google"
)

const adviceModel = "gemini-2.0-flash-001"

// VertexAdviceGenerator implements domain.AdviceGenerator on Vertex AI.
type VertexAdviceGenerator struct {
	logger domain.Logger

	projectID string
	location  string

	genaiClient *genai.Client
}

func NewVertexAdviceGenerator(logger domain.Logger, projectID, location string) (*VertexAdviceGenerator, error) {
	ctx := context.Background()

	// Fail fast when ADC is missing instead of erroring on the first user
	// request.
	if _, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform"); err != nil {
		return nil, fmt.Errorf("failed to get default credentials: %w", err)
	}

	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexAdviceGenerator{
		logger:      logger,
		projectID:   projectID,
		location:    location,
		genaiClient: client,
	}, nil
}

// Generate runs one advice question against Gemini. Failures here mean the
// gated action did not happen, so the caller must not charge quota.
func (g *VertexAdviceGenerator) Generate(ctx context.Context, req domain.AdviceRequest) (*domain.Advice, error) {
	model := g.genaiClient.GenerativeModel(adviceModel)
	model.SetTemperature(0.5)

	prompt := buildAdvicePrompt(req)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &domain.UpstreamError{Message: err.Error()}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &domain.UpstreamError{Message: "empty response from model"}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	tokenCount := 0
	if resp.UsageMetadata != nil {
		tokenCount = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &domain.Advice{
		Answer:     sb.String(),
		TokenCount: tokenCount,
	}, nil
}

func buildAdvicePrompt(req domain.AdviceRequest) string {
	var b strings.Builder

	b.WriteString("Voce é um consultor financeiro pessoal. Responda em português, de forma curta e prática.\n")
	b.WriteString("Situação financeira do usuário:\n---------------------\n")
	b.WriteString(fmt.Sprintf("Renda mensal: %.2f\n", req.Snapshot.MonthlyIncome))
	b.WriteString(fmt.Sprintf("Gastos mensais: %.2f\n", req.Snapshot.MonthlyExpenses))
	b.WriteString(fmt.Sprintf("Total poupado: %.2f\n", req.Snapshot.SavingsTotal))
	for _, g := range req.Snapshot.Goals {
		b.WriteString(fmt.Sprintf("Meta %q: %.2f de %.2f\n", g.Name, g.Current, g.Target))
	}
	for _, c := range req.Snapshot.TopCategories {
		b.WriteString(fmt.Sprintf("Categoria %q: %.2f no mês\n", c.Category, c.Amount))
	}
	b.WriteString("---------------------\n")
	b.WriteString("RULES: Answer the user's question using ONLY the financial context above. ")
	b.WriteString("Only refuse if the question is clearly unrelated to personal finance. ")
	b.WriteString("Do not write code, role-play, or invent figures that are not in the context.\n")
	b.WriteString("\nPergunta: ")
	b.WriteString(req.Prompt)

	return b.String()
}
