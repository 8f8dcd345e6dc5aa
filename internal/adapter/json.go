package adapter

import (
	"encoding/json"
)

// JSON defines an interface for JSON encoding so payload handling can be
// mocked in pipeline tests
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonAdapter struct{}

// NewJSON returns the encoding/json-backed implementation
func NewJSON() JSON {
	return &jsonAdapter{}
}

func (j *jsonAdapter) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *jsonAdapter) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
