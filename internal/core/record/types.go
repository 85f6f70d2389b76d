// Package record models the removal records exported by the dashboard and
// extracts the code fields the generator works from.
package record

import (
	"time"

	"github.com/aki/remocode/internal/core/codegen"
)

// Removal is a removal or preventive-contract record as exported by the dashboard.
// Only Code and ContractNumber matter for generation; the rest is carried through.
type Removal struct {
	ID             string    `yaml:"id" json:"id"`
	Kind           string    `yaml:"kind,omitempty" json:"kind,omitempty"`
	Code           *string   `yaml:"code,omitempty" json:"code,omitempty"`
	ContractNumber *string   `yaml:"contractNumber,omitempty" json:"contractNumber,omitempty"`
	Clinic         string    `yaml:"clinic,omitempty" json:"clinic,omitempty"`
	Status         string    `yaml:"status,omitempty" json:"status,omitempty"`
	Tutor          string    `yaml:"tutor,omitempty" json:"tutor,omitempty"`
	Pet            string    `yaml:"pet,omitempty" json:"pet,omitempty"`
	CreatedAt      time.Time `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// GetCode returns the code, or "" when the record has none
func (r Removal) GetCode() string {
	if r.Code == nil {
		return ""
	}
	return *r.Code
}

// GetContractNumber returns the contract number, or "" when the record has none
func (r Removal) GetContractNumber() string {
	if r.ContractNumber == nil {
		return ""
	}
	return *r.ContractNumber
}

// Snapshot is the full record list at one point in time
type Snapshot struct {
	Records []Removal `yaml:"records" json:"records"`

	// Missing is set when the snapshot file did not exist
	Missing bool `yaml:"-" json:"-"`
	// Path is the file the snapshot was read from
	Path string `yaml:"-" json:"-"`
}

// Codes returns the code field of every record, "" where missing
func (s *Snapshot) Codes() []string {
	codes := make([]string, len(s.Records))
	for i, r := range s.Records {
		codes[i] = r.GetCode()
	}
	return codes
}

// ContractNumbers returns the contract number of every record, "" where missing
func (s *Snapshot) ContractNumbers() []string {
	numbers := make([]string, len(s.Records))
	for i, r := range s.Records {
		numbers[i] = r.GetContractNumber()
	}
	return numbers
}

// CodesFor returns the field that feeds the given kind of code.
// Removal and preventive codes share the code field; the format patterns tell them apart.
func (s *Snapshot) CodesFor(kind codegen.Kind) []string {
	if kind == codegen.KindContract {
		return s.ContractNumbers()
	}
	return s.Codes()
}

// Report summarises how a snapshot looks to one format
type Report struct {
	Kind    codegen.Kind `json:"kind"`
	Latest  string       `json:"latest,omitempty"`
	Next    string       `json:"next,omitempty"`
	Valid   int          `json:"valid"`
	Ignored int          `json:"ignored"`
	Missing int          `json:"missing"`
	Error   string       `json:"error,omitempty"`
}

// Report counts valid, ignored and missing codes for f and computes the next code.
// Values of other formats count as ignored.
func (s *Snapshot) Report(f codegen.Format) Report {
	codes := s.CodesFor(f.Kind)
	rep := Report{Kind: f.Kind}
	for _, c := range codes {
		switch {
		case c == "":
			rep.Missing++
		case f.Valid(c):
			rep.Valid++
		default:
			rep.Ignored++
		}
	}

	rep.Latest, _ = f.Latest(codes)
	next, err := f.Next(codes)
	if err != nil {
		rep.Error = err.Error()
	} else {
		rep.Next = next
	}
	return rep
}
