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


// Package storage reads and writes knowledge records.
//
// Two on-disk forms are supported:
//
//   - JSONL: one record per JSON line. The interchange format, readable by
//     fine-tuning tools. Reading is lenient: malformed lines are skipped and
//     a missing file yields an empty knowledge base rather than an error.
//   - Snapshot: a length-prefixed MUS binary stream with a magic+version
//     header. Compact bulk form for the load-then-query lifecycle; it is
//     written once and consumed by a fresh load, never updated in place.
//
// Missing-file leniency applies to JSONL only. A snapshot path is always
// explicit, so a missing or corrupt snapshot surfaces as an error.
package storage
