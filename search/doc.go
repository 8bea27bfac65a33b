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


// Package search provides keyword retrieval over a knowledge base.
//
// The Searcher type scores records by summing posting-list occurrences of
// the query tokens, so a record mentioning a term three times outranks one
// mentioning it once. Ties rank by record order. Context assembles the top
// hits into a Q/A context string under a token budget for prompt injection.
package search
