package record

import (
	"testing"
	"time"

	"github.com/aki/remocode/internal/core/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSnapshot_Report(t *testing.T) {
	snap := &Snapshot{Records: []Removal{
		{ID: "1", Code: strPtr("A000009"), ContractNumber: strPtr("B00000003")},
		{ID: "2", Code: strPtr("A000010")},
		{ID: "3", Code: strPtr("PRE_00000001")},
		{ID: "4"},
		{ID: "5", Code: strPtr("a000999")},
	}}

	removal := snap.Report(codegen.Removal)
	assert.Equal(t, Report{
		Kind:    codegen.KindRemoval,
		Latest:  "A000010",
		Next:    "A000011",
		Valid:   2,
		Ignored: 2,
		Missing: 1,
	}, removal)

	preventive := snap.Report(codegen.Preventive)
	assert.Equal(t, "PRE_00000002", preventive.Next)
	assert.Equal(t, 1, preventive.Valid)

	contract := snap.Report(codegen.Contract)
	assert.Equal(t, "B00000004", contract.Next)
	assert.Equal(t, 4, contract.Missing)
}

func TestSnapshot_ReportExhausted(t *testing.T) {
	snap := &Snapshot{Records: []Removal{{ID: "1", Code: strPtr("Z999999")}}}

	rep := snap.Report(codegen.Removal)
	assert.Empty(t, rep.Next)
	assert.Contains(t, rep.Error, "Z999999")
}

func TestNewDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	removal, err := NewDraft(codegen.KindRemoval, "A000042", now)
	require.NoError(t, err)
	assert.NotEmpty(t, removal.ID)
	assert.Equal(t, "A000042", removal.GetCode())
	assert.Empty(t, removal.GetContractNumber())
	assert.Equal(t, StatusDraft, removal.Status)
	assert.Equal(t, now, removal.CreatedAt)

	contract, err := NewDraft(codegen.KindContract, "A00000042", now)
	require.NoError(t, err)
	assert.Equal(t, "A00000042", contract.GetContractNumber())
	assert.Nil(t, contract.Code)

	preventive, err := NewDraft(codegen.KindPreventive, "PRE_00000042", now)
	require.NoError(t, err)
	assert.Equal(t, "preventive", preventive.Kind)
	assert.NotEqual(t, removal.ID, preventive.ID)

	_, err = NewDraft(codegen.KindRemoval, "A00000042", now)
	assert.Error(t, err)

	_, err = NewDraft(codegen.Kind("invoice"), "A000001", now)
	assert.ErrorIs(t, err, codegen.ErrUnknownKind)
}
