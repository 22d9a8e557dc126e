package tools

import (
	"fmt"
	"strings"

	"github.com/voxrelay/deepgram-mcp/internal/relay"
)

// formatSubmitAck renders the submission acknowledgement.
func formatSubmitAck(requestID, url, model string, features []string) string {
	var b strings.Builder

	b.WriteString("Transcription job submitted successfully.\n\n")
	fmt.Fprintf(&b, "**Request ID**: `%s`\n\n", requestID)
	fmt.Fprintf(&b, "**Audio URL**: %s\n", url)
	fmt.Fprintf(&b, "**Model**: %s\n", model)
	if len(features) > 0 {
		fmt.Fprintf(&b, "**Features Enabled**: %s\n", strings.Join(features, ", "))
	}
	b.WriteString("\n---\n\n")
	b.WriteString("Deepgram is transcribing your audio asynchronously.\n\n")
	b.WriteString("**Next Steps**:\n")
	b.WriteString("1. Wait 30-60 seconds for processing to complete\n")
	fmt.Fprintf(&b, "2. Use the `check_job_status` tool with request_id `%s`\n", requestID)
	b.WriteString("3. Poll every 30 seconds until the transcript is ready\n\n")
	b.WriteString("For a 1-hour video, expect 2-3 minutes of processing time.")

	return b.String()
}

// formatSubmitFailure renders a submission fault with remediation guidance.
func formatSubmitFailure(err error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Failed to submit transcription job: %v\n\n", err)
	b.WriteString("**Troubleshooting**:\n")
	b.WriteString("- Verify the URL is publicly accessible\n")
	b.WriteString("- Check that the file format is supported (MP3, WAV, MP4, etc.)\n")
	b.WriteString("- Ensure your Deepgram account has sufficient credits\n")
	b.WriteString("- Verify your API key has proper permissions\n")
	b.WriteString("- Check that your relay callback URL is correct and accessible")

	return b.String()
}

// formatStillProcessing renders the expected in-flight state.
func formatStillProcessing(requestID string) string {
	var b strings.Builder

	b.WriteString("**Still Processing**\n\n")
	fmt.Fprintf(&b, "**Request ID**: %s\n\n", requestID)
	b.WriteString("Deepgram is still transcribing your audio. This is normal for longer files.\n\n")
	b.WriteString("**Next Steps**:\n")
	b.WriteString("- Wait 30 seconds\n")
	b.WriteString("- Check status again with this same request_id\n")
	b.WriteString("- Repeat until the transcript is ready\n\n")
	b.WriteString("Estimated times: 5min video -> 30-60s | 30min video -> 1-2min | 1hr video -> 2-3min\n\n")
	b.WriteString("If polling continues well past these estimates, double-check the request_id: ")
	b.WriteString("the relay cannot distinguish a job in flight from an id that never existed.")

	return b.String()
}

// formatRelayUnreachable renders a connection-level relay failure.
func formatRelayUnreachable(requestID, transcriptURL, healthURL string) string {
	var b strings.Builder

	b.WriteString("**Webhook Relay Unreachable**\n\n")
	fmt.Fprintf(&b, "**Request ID**: %s\n\n", requestID)
	fmt.Fprintf(&b, "Cannot connect to the webhook relay at: %s\n\n", transcriptURL)
	b.WriteString("**Troubleshooting**:\n")
	b.WriteString("- Verify your webhook relay is deployed and running\n")
	b.WriteString("- Check the relay callback URL in your configuration\n")
	fmt.Fprintf(&b, "- Test the health endpoint: %s\n", healthURL)
	b.WriteString("- Ensure the worker is not paused or deleted")

	return b.String()
}

// formatStatusFailure renders an unexpected polling fault.
func formatStatusFailure(err error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Failed to check job status: %v\n\n", err)
	b.WriteString("**Troubleshooting**:\n")
	b.WriteString("- Verify the request_id is correct\n")
	b.WriteString("- Check that your webhook relay is deployed and accessible\n")
	b.WriteString("- Ensure your API key has proper permissions\n")
	b.WriteString("- Try again in 30 seconds if the job is still processing")

	return b.String()
}

// formatReport renders the full multi-section transcript report. Sections
// for features the caller never enabled are omitted entirely.
func formatReport(requestID string, record *relay.JobRecord) string {
	var b strings.Builder

	alt := record.FirstAlternative()
	meta := record.Transcript.Metadata
	results := record.Transcript.Results

	b.WriteString("**Transcription Complete**\n\n")
	fmt.Fprintf(&b, "**Request ID**: %s\n", requestID)
	fmt.Fprintf(&b, "**Duration**: %.2fs\n", meta.Duration)
	model := meta.ModelInfo.Name
	if model == "" {
		model = defaultModel
	}
	fmt.Fprintf(&b, "**Model**: %s\n", model)
	fmt.Fprintf(&b, "**Channels**: %d\n", meta.Channels)
	if record.StoredAt != "" {
		fmt.Fprintf(&b, "**Stored At**: %s\n", record.StoredAt)
	}
	b.WriteString("\n---\n\n")

	if alt != nil {
		fmt.Fprintf(&b, "**Full Transcript**:\n\n%s\n", alt.Transcript)

		if alt.Paragraphs != nil && len(alt.Paragraphs.Paragraphs) > 0 {
			fmt.Fprintf(&b, "\n---\n\n**Paragraphs** (%d):\n\n", len(alt.Paragraphs.Paragraphs))
			for i, para := range alt.Paragraphs.Paragraphs {
				fmt.Fprintf(&b, "**Paragraph %d** (%.2fs - %.2fs):\n", i+1, para.Start, para.End)
				sentences := make([]string, len(para.Sentences))
				for j, s := range para.Sentences {
					sentences[j] = s.Text
				}
				fmt.Fprintf(&b, "%s\n\n", strings.Join(sentences, " "))
			}
		}

		if len(alt.SentimentSegments) > 0 {
			b.WriteString("\n---\n\n**Sentiment Analysis**:\n\n")
			for _, seg := range alt.SentimentSegments {
				fmt.Fprintf(&b, "%s %s (%.2fs - %.2fs): %q\n",
					sentimentMarker(seg.Sentiment), seg.Sentiment, seg.Start, seg.End, seg.Text)
			}
		}
	}

	if results.Topics != nil && len(results.Topics.Segments) > 0 {
		b.WriteString("\n---\n\n**Topics Detected**:\n\n")
		for _, seg := range results.Topics.Segments {
			fmt.Fprintf(&b, "- %s (word %d)\n", seg.Text, seg.StartWord)
		}
	}

	if len(results.Entities) > 0 {
		b.WriteString("\n---\n\n**Entities Extracted**:\n\n")
		for _, entity := range results.Entities {
			fmt.Fprintf(&b, "- **%s**: %s\n", entity.Label, entity.Value)
		}
	}

	if results.Summary != nil && results.Summary.Text != "" {
		fmt.Fprintf(&b, "\n---\n\n**Summary**:\n\n%s\n", results.Summary.Text)
	}

	return b.String()
}

// sentimentMarker maps the three-way sentiment to a compact indicator.
func sentimentMarker(sentiment string) string {
	switch sentiment {
	case "positive":
		return "[+]"
	case "negative":
		return "[-]"
	default:
		return "[=]"
	}
}

// formatConnectionStatus renders both health checks independently.
func formatConnectionStatus(deepgramOK, relayOK bool, callbackURL string) string {
	var b strings.Builder

	b.WriteString("**Connection Test**\n\n")
	if deepgramOK {
		b.WriteString("**Deepgram API**: Connected and authenticated\n")
	} else {
		b.WriteString("**Deepgram API**: Unreachable or unauthorized - verify your API key at https://console.deepgram.com\n")
	}
	if relayOK {
		b.WriteString("**Webhook Relay**: Healthy\n")
	} else {
		b.WriteString("**Webhook Relay**: Unreachable\n")
	}
	fmt.Fprintf(&b, "**Callback URL**: %s\n", callbackURL)

	if deepgramOK && relayOK {
		b.WriteString("\nYour setup is ready to transcribe audio and video files.")
	}

	return b.String()
}
