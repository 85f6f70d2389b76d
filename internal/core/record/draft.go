package record

import (
	"fmt"
	"time"

	"github.com/aki/remocode/internal/core/codegen"
	"github.com/google/uuid"
)

// StatusDraft marks records built by NewDraft
const StatusDraft = "draft"

// NewDraft builds an unsaved record carrying a freshly generated code.
// The dashboard is responsible for persisting it.
func NewDraft(kind codegen.Kind, code string, now time.Time) (Removal, error) {
	f, err := codegen.FormatFor(kind)
	if err != nil {
		return Removal{}, err
	}
	if !f.Valid(code) {
		return Removal{}, fmt.Errorf("%q is not a valid %s code", code, kind)
	}

	r := Removal{
		ID:        uuid.New().String(),
		Kind:      string(codegen.KindRemoval),
		Status:    StatusDraft,
		CreatedAt: now.UTC(),
	}

	switch kind {
	case codegen.KindContract:
		r.ContractNumber = &code
	case codegen.KindPreventive:
		r.Kind = string(codegen.KindPreventive)
		r.Code = &code
	default:
		r.Code = &code
	}
	return r, nil
}
