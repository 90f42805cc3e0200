package application

import (
	"encoding/json"

	"github.com/bnema/bella-cli/internal/domain"
)

// WriteResult reports a saved file together with the relisted parent
// directory. A failed relist does not fail the write.
type WriteResult struct {
	Path    string
	Dir     string
	Listing domain.Listing
	ListErr error
}

type RunResult struct {
	Output  json.RawMessage
	History string
}
