package deepgram

import (
	"encoding/json"
	"strconv"
)

// TranscriptionOptions holds parameters for one submission. Nil boolean
// flags are omitted from the outgoing query entirely; Deepgram applies its
// own defaults to absent parameters.
type TranscriptionOptions struct {
	// URL is the publicly accessible address of the audio or video file.
	URL string

	Diarize        *bool
	SmartFormat    *bool
	Punctuate      *bool
	Paragraphs     *bool
	Utterances     *bool
	Sentiment      *bool
	Summarize      *bool
	Topics         *bool
	DetectEntities *bool
	FillerWords    *bool

	// Language is a BCP-47 language code (e.g. "en").
	Language string
	// Model is the transcription model (e.g. "nova-3").
	Model string
	// Callback, when set, switches Deepgram to async delivery: results are
	// POSTed to this address instead of the synchronous response.
	Callback string
}

// Bool returns a pointer to v, for setting optional flags.
func Bool(v bool) *bool { return &v }

// queryParams renders the options as Deepgram query parameters.
// Set flags appear with their literal value; unset flags do not appear.
func (o TranscriptionOptions) queryParams() map[string]string {
	params := make(map[string]string)

	if o.Callback != "" {
		params["callback"] = o.Callback
	}

	flags := map[string]*bool{
		"diarize":         o.Diarize,
		"smart_format":    o.SmartFormat,
		"punctuate":       o.Punctuate,
		"paragraphs":      o.Paragraphs,
		"utterances":      o.Utterances,
		"sentiment":       o.Sentiment,
		"summarize":       o.Summarize,
		"topics":          o.Topics,
		"detect_entities": o.DetectEntities,
		"filler_words":    o.FillerWords,
	}
	for name, v := range flags {
		if v != nil {
			params[name] = strconv.FormatBool(*v)
		}
	}

	if o.Language != "" {
		params["language"] = o.Language
	}
	if o.Model != "" {
		params["model"] = o.Model
	}

	return params
}

// SubmitResponse is the async submission acknowledgement.
type SubmitResponse struct {
	// RequestID is the provider-assigned identifier. It is opaque: format
	// and uniqueness are owned by Deepgram.
	RequestID string `json:"request_id"`
}

// Project is one Deepgram project visible to the credential.
type Project struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
}

type listProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// RequestStatus is the provider-side record of a transcription request.
type RequestStatus struct {
	RequestID   string          `json:"request_id"`
	ProjectUUID string          `json:"project_uuid"`
	Created     string          `json:"created"`
	Path        string          `json:"path"`
	APIKeyID    string          `json:"api_key_id"`
	Response    json.RawMessage `json:"response"`
	Code        int             `json:"code"`
	Deployment  string          `json:"deployment"`
	Callback    string          `json:"callback,omitempty"`
}

type getRequestResponse struct {
	Request RequestStatus `json:"request"`
}
