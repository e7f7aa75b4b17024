package summarizer

import "context"

// Summarizer reads generated SRT files and produces LLM-generated summaries
// as markdown and docx.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srtDir, destDir string) error
}
