package fitapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResultsList decodes core API list endpoints which return either a bare
// JSON array or a paginated {"results": [...]} envelope. Consumers only
// ever see the Items slice.
type ResultsList[T any] struct {
	Items []T
}

func (l *ResultsList[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &l.Items)
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode results envelope: %w", err)
	}
	l.Items = envelope.Results
	return nil
}

// DayRef normalizes the completed-day "program_day" field, which the core
// API serializes as either a raw id or a full ProgramDay object.
type DayRef struct {
	ID  int64
	Day *ProgramDay
}

func (r *DayRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var day ProgramDay
		if err := json.Unmarshal(data, &day); err != nil {
			return fmt.Errorf("decode program day object: %w", err)
		}
		r.ID = day.ID
		r.Day = &day
		return nil
	}

	if err := json.Unmarshal(data, &r.ID); err != nil {
		return fmt.Errorf("decode program day id: %w", err)
	}
	return nil
}

func (r DayRef) MarshalJSON() ([]byte, error) {
	if r.Day != nil {
		return json.Marshal(r.Day)
	}
	return json.Marshal(r.ID)
}

// ProgramRef does the same for the enrollment "program" field: a raw id
// on list serializations, a full object on detail ones.
type ProgramRef struct {
	ID      int64
	Program *Program
}

func (r *ProgramRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var program Program
		if err := json.Unmarshal(data, &program); err != nil {
			return fmt.Errorf("decode program object: %w", err)
		}
		r.ID = program.ID
		r.Program = &program
		return nil
	}

	if err := json.Unmarshal(data, &r.ID); err != nil {
		return fmt.Errorf("decode program id: %w", err)
	}
	return nil
}

func (r ProgramRef) MarshalJSON() ([]byte, error) {
	if r.Program != nil {
		return json.Marshal(r.Program)
	}
	return json.Marshal(r.ID)
}
