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

import "errors"

// Domain validation errors
var (
	// ErrInvalidKnowledgeRecord indicates a KnowledgeRecord failed validation.
	ErrInvalidKnowledgeRecord = errors.New("invalid knowledge record")

	// ErrEmptyRecord indicates both the instruction and response are empty.
	ErrEmptyRecord = errors.New("record has no instruction or response")

	// ErrInvalidResultLimit indicates a non-positive search result limit.
	ErrInvalidResultLimit = errors.New("result limit must be greater than zero")

	// ErrInvalidTokenBudget indicates a non-positive context token budget.
	ErrInvalidTokenBudget = errors.New("token budget must be greater than zero")
)
