package llmutils

type TokenRates struct {
	Input  float64
	Output float64
}

// Pricing constants in dollars per million tokens
const (
	GPT4oInputRate          = 2.5
	GPT4oOutputRate         = 10.0
	GPT4oMiniInputRate      = 0.15
	GPT4oMiniOutputRate     = 0.60
	O3MiniInputRate         = 1.10
	O3MiniOutputRate        = 4.40
	TextEmbedding3SmallRate = 0.02
	TextEmbedding3LargeRate = 0.13
	TextEmbeddingAda002Rate = 0.10
)

// ModelPricings is a map of model names to their pricing information.
// On Azure the model identifier is the deployment name, which usually matches.
var ModelPricings = map[string]TokenRates{
	"gpt-4o": {
		Input:  GPT4oInputRate,
		Output: GPT4oOutputRate,
	},
	"gpt-4o-mini": {
		Input:  GPT4oMiniInputRate,
		Output: GPT4oMiniOutputRate,
	},
	"o3-mini": {
		Input:  O3MiniInputRate,
		Output: O3MiniOutputRate,
	},
	"text-embedding-3-small": {
		Input: TextEmbedding3SmallRate,
	},
	"text-embedding-3-large": {
		Input: TextEmbedding3LargeRate,
	},
	"text-embedding-ada-002": {
		Input: TextEmbeddingAda002Rate,
	},
}

// CostDetails represents detailed cost information for a single call
type CostDetails struct {
	InputTokens  int64
	OutputTokens int64
	TotalCost    float64
}

// Cost prices the usage with the rates of its model.
// The second return value is false when the model has no known pricing.
func (u Usage) Cost() (*CostDetails, bool) {
	pricing, exists := ModelPricings[u.Model]
	if !exists {
		return nil, false
	}

	inputCost := float64(u.PromptTokens) * pricing.Input / 1000000
	outputCost := float64(u.CompletionTokens) * pricing.Output / 1000000

	return &CostDetails{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalCost:    inputCost + outputCost,
	}, true
}
