package result

// Error types produced during generation.
const (
	TypeInvalidRequest     = "invalid_request"
	TypeFetchError         = "fetch_error"
	TypeCollectionNotFound = "collection_not_found"
	TypeAssetNotFound      = "asset_not_found"
	TypeClassification     = "classification_error"
)

// Error represents a fatal generation error. Any Error aborts the run.
type Error struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	LayerKey   string `json:"layer_key,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface so structured errors can cross
// package boundaries without losing their fields.
func (e *Error) Error() string { return e.Message }

// Errorf builds an Error with a plain message.
func Errorf(errType, layerKey, message string) *Error {
	return &Error{Type: errType, Severity: "error", LayerKey: layerKey, Message: message}
}

// Warning represents a non-fatal notice surfaced to the operator.
type Warning struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	LayerKey string `json:"layer_key,omitempty"`
	Message  string `json:"message"`
}
