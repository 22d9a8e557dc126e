package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voxrelay/deepgram-mcp/internal/deepgram"
	"github.com/voxrelay/deepgram-mcp/internal/logger"
)

// SubmitInput is the submit_transcription_job tool input. Unset boolean
// flags stay nil and are never sent to Deepgram.
type SubmitInput struct {
	URL            string `json:"url" jsonschema:"publicly accessible URL of the audio or video file to transcribe"`
	Diarize        *bool  `json:"diarize,omitempty" jsonschema:"enable speaker diarization (default: false)"`
	SmartFormat    *bool  `json:"smart_format,omitempty" jsonschema:"apply smart formatting for readability (default: true)"`
	Punctuate      *bool  `json:"punctuate,omitempty" jsonschema:"add punctuation and capitalization (default: true)"`
	Paragraphs     *bool  `json:"paragraphs,omitempty" jsonschema:"split the transcript into paragraphs (default: true)"`
	Utterances     *bool  `json:"utterances,omitempty" jsonschema:"segment speech into semantic units (default: false)"`
	Sentiment      *bool  `json:"sentiment,omitempty" jsonschema:"detect sentiment throughout the transcript (default: false)"`
	Summarize      *bool  `json:"summarize,omitempty" jsonschema:"generate a summary of the content (default: false)"`
	Topics         *bool  `json:"topics,omitempty" jsonschema:"detect topics throughout the transcript (default: false)"`
	DetectEntities *bool  `json:"detect_entities,omitempty" jsonschema:"extract entities like names and places (default: false)"`
	FillerWords    *bool  `json:"filler_words,omitempty" jsonschema:"keep filler words like 'uh' and 'um' (default: false)"`
	Language       string `json:"language,omitempty" jsonschema:"BCP-47 language code, e.g. 'en' (default: 'en')"`
	Model          string `json:"model,omitempty" jsonschema:"transcription model, e.g. 'nova-2', 'nova-3', 'whisper' (default: 'nova-3')"`
}

// transcriptionOptions applies the defaulting policy: smart_format,
// punctuate, and paragraphs turn on when unspecified, the model falls back
// to the baseline, and every other unset flag stays omitted.
func (in SubmitInput) transcriptionOptions(callback string) deepgram.TranscriptionOptions {
	opts := deepgram.TranscriptionOptions{
		URL:            in.URL,
		Diarize:        in.Diarize,
		SmartFormat:    in.SmartFormat,
		Punctuate:      in.Punctuate,
		Paragraphs:     in.Paragraphs,
		Utterances:     in.Utterances,
		Sentiment:      in.Sentiment,
		Summarize:      in.Summarize,
		Topics:         in.Topics,
		DetectEntities: in.DetectEntities,
		FillerWords:    in.FillerWords,
		Language:       in.Language,
		Model:          in.Model,
		Callback:       callback,
	}
	if opts.SmartFormat == nil {
		opts.SmartFormat = deepgram.Bool(true)
	}
	if opts.Punctuate == nil {
		opts.Punctuate = deepgram.Bool(true)
	}
	if opts.Paragraphs == nil {
		opts.Paragraphs = deepgram.Bool(true)
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	return opts
}

// enabledFeatures lists the human-readable names of the analysis features
// the caller switched on.
func (in SubmitInput) enabledFeatures() []string {
	var features []string
	if in.Diarize != nil && *in.Diarize {
		features = append(features, "Speaker Diarization")
	}
	if in.Sentiment != nil && *in.Sentiment {
		features = append(features, "Sentiment Analysis")
	}
	if in.Topics != nil && *in.Topics {
		features = append(features, "Topic Detection")
	}
	if in.DetectEntities != nil && *in.DetectEntities {
		features = append(features, "Entity Extraction")
	}
	if in.Summarize != nil && *in.Summarize {
		features = append(features, "Summarization")
	}
	return features
}

// SubmitTranscriptionJob submits a source URL to Deepgram with the relay
// callback as the delivery target. Synchronous return-with-transcript is
// never used.
func (s *Server) SubmitTranscriptionJob(ctx context.Context, req *mcp.CallToolRequest, in SubmitInput) (*mcp.CallToolResult, any, error) {
	correlationID := uuid.NewString()
	start := time.Now()

	opts := in.transcriptionOptions(s.relay.CallbackURL())

	s.events.RequestReceived(toolSubmit, correlationID, map[string]interface{}{
		"url":   in.URL,
		"model": opts.Model,
	})

	apiStart := time.Now()
	result, err := s.dg.Submit(ctx, opts)
	if err != nil {
		s.events.Error(toolSubmit, correlationID, err)
		return errorResult(formatSubmitFailure(err)), nil, nil
	}
	s.events.ExternalCall("deepgram", correlationID, time.Since(apiStart), 200)

	s.log.Info("transcription job submitted", logger.Fields(
		logger.FieldRequestID, result.RequestID,
		logger.FieldCorrelationID, correlationID,
	))

	text := formatSubmitAck(result.RequestID, in.URL, opts.Model, in.enabledFeatures())
	s.events.ResponseSent(toolSubmit, correlationID, time.Since(start), len(text))

	return textResult(text), nil, nil
}
