// Copyright 2025 ENKI-420
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateKnowledgeRecord validates a KnowledgeRecord according to domain rules.
//
// Validation rules:
//   - Instruction and Response must not both be empty
//
// NOT validated (optional on externally produced records):
//   - Id (0 is valid for records loaded from external files)
//   - Kind, System, Metadata
func ValidateKnowledgeRecord(record *KnowledgeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidKnowledgeRecord)
	}

	if record.Instruction == "" && record.Response == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKnowledgeRecord, ErrEmptyRecord)
	}

	return nil
}

// ValidateResultLimit validates that a search result limit is usable.
func ValidateResultLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResultLimit, limit)
	}
	return nil
}

// ValidateTokenBudget validates that a context token budget is usable.
func ValidateTokenBudget(budget int) error {
	if budget < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTokenBudget, budget)
	}
	return nil
}
