// Copyright 2025 go-highway Authors
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

package hwy

import "fmt"

// Fixed-predicate forms from SSE/SSE2 (CMPEQPS, CMPLTSS, ...). Each is an
// alias for ComparePacked or CompareScalar with the predicate the legacy
// instruction encodes. The SSE greater-than forms swap their operands in
// hardware; that is the same as the GT/GE/NGT/NGE predicates used here.

// CmpEq is ComparePacked(CmpEqOQ, a, b).
func CmpEq[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpEqOQ, a, b) }

// CmpLt is ComparePacked(CmpLtOS, a, b).
func CmpLt[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpLtOS, a, b) }

// CmpLe is ComparePacked(CmpLeOS, a, b).
func CmpLe[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpLeOS, a, b) }

// CmpGt is ComparePacked(CmpGtOS, a, b).
func CmpGt[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpGtOS, a, b) }

// CmpGe is ComparePacked(CmpGeOS, a, b).
func CmpGe[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpGeOS, a, b) }

// CmpNeq is ComparePacked(CmpNeqUQ, a, b).
func CmpNeq[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpNeqUQ, a, b) }

// CmpNlt is ComparePacked(CmpNltUS, a, b).
func CmpNlt[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpNltUS, a, b) }

// CmpNle is ComparePacked(CmpNleUS, a, b).
func CmpNle[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpNleUS, a, b) }

// CmpNgt is ComparePacked(CmpNgtUS, a, b).
func CmpNgt[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpNgtUS, a, b) }

// CmpNge is ComparePacked(CmpNgeUS, a, b).
func CmpNge[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpNgeUS, a, b) }

// CmpOrd is ComparePacked(CmpOrdQ, a, b).
func CmpOrd[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpOrdQ, a, b) }

// CmpUnord is ComparePacked(CmpUnordQ, a, b).
func CmpUnord[T Floats](a, b Vec[T]) Vec[T] { return ComparePacked(CmpUnordQ, a, b) }

// CmpEqScalar is CompareScalar(CmpEqOQ, a, b).
func CmpEqScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpEqOQ, a, b) }

// CmpLtScalar is CompareScalar(CmpLtOS, a, b).
func CmpLtScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpLtOS, a, b) }

// CmpLeScalar is CompareScalar(CmpLeOS, a, b).
func CmpLeScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpLeOS, a, b) }

// CmpGtScalar is CompareScalar(CmpGtOS, a, b).
func CmpGtScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpGtOS, a, b) }

// CmpGeScalar is CompareScalar(CmpGeOS, a, b).
func CmpGeScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpGeOS, a, b) }

// CmpNeqScalar is CompareScalar(CmpNeqUQ, a, b).
func CmpNeqScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpNeqUQ, a, b) }

// CmpNltScalar is CompareScalar(CmpNltUS, a, b).
func CmpNltScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpNltUS, a, b) }

// CmpNleScalar is CompareScalar(CmpNleUS, a, b).
func CmpNleScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpNleUS, a, b) }

// CmpNgtScalar is CompareScalar(CmpNgtUS, a, b).
func CmpNgtScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpNgtUS, a, b) }

// CmpNgeScalar is CompareScalar(CmpNgeUS, a, b).
func CmpNgeScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpNgeUS, a, b) }

// CmpOrdScalar is CompareScalar(CmpOrdQ, a, b).
func CmpOrdScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpOrdQ, a, b) }

// CmpUnordScalar is CompareScalar(CmpUnordQ, a, b).
func CmpUnordScalar[T Floats](a, b Vec[T]) Vec[T] { return CompareScalar(CmpUnordQ, a, b) }

// comiPredicates maps the relations COMISS/COMISD can test to the signaling
// predicate with the same result; ucomiPredicates to the quiet one.
var (
	comiPredicates = map[Relation]Predicate{
		RelEqual:        CmpEqOS,
		RelLess:         CmpLtOS,
		RelLessEqual:    CmpLeOS,
		RelGreater:      CmpGtOS,
		RelGreaterEqual: CmpGeOS,
		RelNotEqual:     CmpNeqUS,
	}
	ucomiPredicates = map[Relation]Predicate{
		RelEqual:        CmpEqOQ,
		RelLess:         CmpLtOQ,
		RelLessEqual:    CmpLeOQ,
		RelGreater:      CmpGtOQ,
		RelGreaterEqual: CmpGeOQ,
		RelNotEqual:     CmpNeqUQ,
	}
)

// Comi compares lane 0 of a and b and returns 1 or 0 (_mm_comieq_ss and
// friends). A NaN operand gives 0 for every relation except RelNotEqual,
// which gives 1. It panics for relations other than the six ordinary ones.
func Comi[T Floats](rel Relation, a, b Vec[T]) int {
	return scalarInt(comiPredicates, "Comi", rel, a, b)
}

// Ucomi is the quiet form of Comi. The result is identical; only the
// hardware exception behavior differs.
func Ucomi[T Floats](rel Relation, a, b Vec[T]) int {
	return scalarInt(ucomiPredicates, "Ucomi", rel, a, b)
}

func scalarInt[T Floats](table map[Relation]Predicate, name string, rel Relation, a, b Vec[T]) int {
	p, ok := table[rel]
	if !ok {
		panic(fmt.Sprintf("hwy: %s: unsupported relation %v", name, rel))
	}
	mustValidate(p, a, b)
	if evalLane(predicateTable[p], a.data[0], b.data[0]) {
		return 1
	}
	return 0
}
