package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert at analyzing video transcripts. Based on the subtitles below, write a DETAILED summary.

Requirements:
- Start with a one-sentence title describing the topic of the video
- List ALL main points in order of appearance
- Explain each point, including important notes, tips, and warnings
- Keep technical terms as-is
- Use markdown format: headings, bullet points, bold for key terms
- End with an "Important notes" section if anything needs emphasis

Video subtitles:
---
%s
---`

// SummarizeAll reads all SRT files from srtDir, calls Gemini for each, and
// writes a markdown summary plus a docx rendition into destDir.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srtDir, destDir string) error {
	if len(s.apiKeys) == 0 {
		return fmt.Errorf("no Gemini API keys configured")
	}

	srtFiles, err := s.discoverSRTFiles(srtDir)
	if err != nil {
		return fmt.Errorf("discover SRT files: %w", err)
	}

	if len(srtFiles) == 0 {
		s.logger.Info(ctx, "No SRT files found in %s", srtDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d SRT files to summarize", len(srtFiles))

	successCount := 0
	failCount := 0

	for i, srtPath := range srtFiles {
		videoName := strings.TrimSuffix(filepath.Base(srtPath), ".srt")
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(srtFiles), videoName)

		content, err := os.ReadFile(srtPath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", srtPath, err)
			failCount++
			continue
		}

		summary, err := s.callGemini(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", videoName, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			videoName,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(destDir, videoName+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		docxPath := filepath.Join(destDir, videoName+".docx")
		if err := markdownToDocx(videoName, summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		}

		transcriptPath := filepath.Join(destDir, videoName+"_transcript.docx")
		if err := srtToDocx(videoName, string(content), transcriptPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", transcriptPath, err)
		}

		successCount++
	}

	s.logger.Info(ctx, "Summarization done: %d ok, %d failed", successCount, failCount)
	if successCount == 0 && failCount > 0 {
		return fmt.Errorf("all %d summaries failed", failCount)
	}
	return nil
}

func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func (s *implSummarizer) discoverSRTFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".srt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
