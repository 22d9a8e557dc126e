package relay

// JobRecord is the relay's stored snapshot of one completed job.
type JobRecord struct {
	RequestID  string      `json:"request_id"`
	StoredAt   string      `json:"stored_at"`
	Transcript *Transcript `json:"transcript"`
}

// Ready reports whether the record carries transcription results.
func (r *JobRecord) Ready() bool {
	return r != nil && r.Transcript != nil && r.Transcript.Results != nil
}

// FirstAlternative returns the first channel's first alternative, or nil.
func (r *JobRecord) FirstAlternative() *Alternative {
	if !r.Ready() || len(r.Transcript.Results.Channels) == 0 {
		return nil
	}
	alts := r.Transcript.Results.Channels[0].Alternatives
	if len(alts) == 0 {
		return nil
	}
	return &alts[0]
}

// Transcript is the Deepgram callback payload as stored by the relay.
type Transcript struct {
	Metadata Metadata `json:"metadata"`
	Results  *Results `json:"results"`
}

// Metadata describes the transcribed media.
type Metadata struct {
	Duration  float64   `json:"duration"`
	Channels  int       `json:"channels"`
	ModelInfo ModelInfo `json:"model_info"`
}

// ModelInfo names the model that produced the transcript.
type ModelInfo struct {
	Name string `json:"name"`
}

// Results holds the transcription output sections. Optional sections are
// nil or empty when the corresponding feature was not requested.
type Results struct {
	Channels []Channel `json:"channels"`
	Topics   *Topics   `json:"topics,omitempty"`
	Entities []Entity  `json:"entities,omitempty"`
	Summary  *Summary  `json:"summary,omitempty"`
}

// Channel is one audio channel's transcription.
type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one transcription hypothesis for a channel.
type Alternative struct {
	Transcript        string             `json:"transcript"`
	Paragraphs        *ParagraphGroup    `json:"paragraphs,omitempty"`
	SentimentSegments []SentimentSegment `json:"sentiment_segments,omitempty"`
}

// ParagraphGroup wraps the paragraph list.
type ParagraphGroup struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph is a time-bounded group of sentences.
type Paragraph struct {
	Start     float64    `json:"start"`
	End       float64    `json:"end"`
	Sentences []Sentence `json:"sentences"`
}

// Sentence is one sentence of a paragraph.
type Sentence struct {
	Text string `json:"text"`
}

// SentimentSegment is a time-bounded sentiment classification.
// Sentiment is one of "positive", "neutral", "negative".
type SentimentSegment struct {
	Sentiment string  `json:"sentiment"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Text      string  `json:"text"`
}

// Topics wraps detected topic segments.
type Topics struct {
	Segments []TopicSegment `json:"segments"`
}

// TopicSegment is one detected topic.
type TopicSegment struct {
	Text      string `json:"text"`
	StartWord int    `json:"start_word"`
}

// Entity is one extracted entity.
type Entity struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary is the generated content summary.
type Summary struct {
	Text string `json:"text"`
}
