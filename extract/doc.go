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


// Package extract pulls structured knowledge out of raw masterlog text.
//
// An Extractor recognizes four independent record families:
//   - numbered and symbolic equations
//   - CCCE metric readings
//   - DNA-Lang ORGANISM definitions
//   - bordered, ALL-CAPS titled sections
//
// Pattern matching runs over the raw text; captured fields are cleaned of
// ANSI escapes and collapsed whitespace afterwards. Extraction is pure:
// identical input always yields identical records in identical order.
//
// The package also exports the text primitives the pipeline shares:
// Normalize, StripANSI, DecodePermissive, TruncateRunes and BalancedSpan.
package extract
