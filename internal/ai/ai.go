package ai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mspro-labs/cupnote/internal/labelparser"
)

const transcribePrompt = `Transcribe every piece of text printed on this coffee bag label.
Write each printed line on its own line, top to bottom, exactly as printed.
Do not translate, summarize, explain or add anything.`

// Client wraps the GenAI client.
type Client struct {
	genaiClient *genai.Client
	model       *genai.GenerativeModel
}

// NewClient creates a connected AI client.
func NewClient(ctx context.Context, modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	model := c.GenerativeModel(modelName)
	model.SetTemperature(0)

	return &Client{
		genaiClient: c,
		model:       model,
	}, nil
}

// Close terminates the connection.
func (c *Client) Close() {
	if c.genaiClient != nil {
		c.genaiClient.Close()
	}
}

// Recognize asks the model to transcribe the label in the image and returns
// the transcript as ordered blocks without positions.
func (c *Client) Recognize(ctx context.Context, imagePath string) ([]labelparser.Block, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	format, err := imageFormat(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", imagePath, err)
	}

	res, err := c.model.GenerateContent(ctx, genai.ImageData(format, data), genai.Text(transcribePrompt))
	if err != nil {
		return nil, err
	}
	transcript := responseText(res)
	if transcript == "" {
		return nil, fmt.Errorf("AI returned an empty transcript")
	}
	return blocksFromTranscript(transcript), nil
}

func imageFormat(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	format, ok := strings.CutPrefix(mime, "image/")
	if !ok {
		return "", fmt.Errorf("unsupported file type %s", mime)
	}
	return format, nil
}

func responseText(res *genai.GenerateContentResponse) string {
	// Only the first candidate is requested.
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// blocksFromTranscript turns a model reply into one block per printed line,
// dropping code fences and blank lines.
func blocksFromTranscript(transcript string) []labelparser.Block {
	var blocks []labelparser.Block
	for _, line := range strings.Split(strings.ReplaceAll(transcript, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		blocks = append(blocks, labelparser.Block{Text: line})
	}
	return blocks
}
